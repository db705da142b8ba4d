// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Astronomical provider selection values.
const (
	ProviderUSNO      = "usno"
	ProviderEphemeris = "ephemeris"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion  string
	Environment string

	// External services
	AirportAPIURL string
	AirportAppID  string
	AstroAPIURL   string
	AstroProvider string
	HTTPTimeout   time.Duration

	// Response cache
	CacheTTL   time.Duration
	GCInterval time.Duration

	// MongoDB (response cache store; empty URI disables caching)
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL (airport directory; empty URI disables the directory)
	PostgresURI string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	environment := getEnv("ENVIRONMENT", "local")

	// Expired cache entries are swept every six hours in production and
	// hourly everywhere else, matching the housekeeping cadence of the
	// public deployment.
	gcHours := 6
	if environment != "production" {
		gcHours = 1
	}

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:  getEnv("APP_VERSION", "1.0.0"),
		Environment: environment,

		AirportAPIURL: getEnv("AIRPORT_API_URL", "https://www.airport-data.com/api/ap_info.json"),
		AirportAppID:  getEnv("AIRPORT_APP_ID", ""),
		AstroAPIURL:   getEnv("ASTRO_API_URL", "https://aa.usno.navy.mil/api/rstt/oneday"),
		AstroProvider: getEnv("ASTRO_PROVIDER", ProviderEphemeris),
		HTTPTimeout:   time.Duration(getEnvAsInt("HTTP_TIMEOUT", 10)) * time.Second,

		CacheTTL:   time.Duration(getEnvAsInt("CACHE_TTL_MINUTES", 1440)) * time.Minute,
		GCInterval: time.Duration(getEnvAsInt("GC_HOURS", gcHours)) * time.Hour,

		MongoURI:      getEnv("MONGODB_DSN", ""),
		MongoDB:       getEnv("MONGO_DB", "loggingnight"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresURI: getEnv("POSTGRES_DSN", ""),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
