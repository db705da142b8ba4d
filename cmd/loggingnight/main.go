package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"loggingnight-service/internal/domain/entity"
	"loggingnight-service/internal/domain/repository"
	"loggingnight-service/internal/infrastructure/config"
	"loggingnight-service/internal/infrastructure/persistence"
	implRepo "loggingnight-service/internal/interface/repository"
	"loggingnight-service/internal/usecase"
	"loggingnight-service/pkg/logger"
	"loggingnight-service/pkg/metrics"
	"loggingnight-service/pkg/utils"
)

// Process exit codes for scripted callers. Timeouts, dependency HTTP
// errors and unresolvable airports are reported distinctly.
const (
	exitTimeout    = 1
	exitHTTPError  = 2
	exitNoLocation = 3
	exitBadInput   = 4
)

func main() {
	airportFlag := flag.String("airport", "", "ICAO or FAA code for the airport")
	dateFlag := flag.String("date", "", "date of the flight (default today)")
	offsetFlag := flag.Float64("offset", 0, "force a fixed UTC offset in hours")
	zuluFlag := flag.Bool("zulu", false, "report times in Zulu")
	cacheFlag := flag.Bool("cache", false, "cache remote API responses")
	flag.Parse()

	if *airportFlag == "" {
		fmt.Fprintln(os.Stderr, "an airport code is required (-airport)")
		flag.Usage()
		os.Exit(exitBadInput)
	}

	offsetSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "offset" {
			offsetSet = true
		}
	})

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(exitBadInput)
	}

	log := logger.NewLogger(cfg.Environment)

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if *dateFlag != "" {
		date, err = utils.ParseDate(*dateFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitBadInput)
		}
	}

	ctx := context.Background()
	resolver, err := buildResolver(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to assemble resolver", "error", err)
	}

	req := usecase.Request{
		Code:     *airportFlag,
		Date:     date,
		Zulu:     *zuluFlag,
		UseCache: *cacheFlag,
	}
	if offsetSet {
		req.Offset = offsetFlag
	}

	result, err := resolver.Resolve(ctx, req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}

	printBriefing(result, date)
}

// buildResolver wires the configured collaborators together. The
// astronomical provider is a deployment choice; MongoDB and PostgreSQL
// are both optional.
func buildResolver(ctx context.Context, cfg *config.Config, log logger.Logger) (*usecase.NightResolver, error) {
	m := metrics.NewMetrics("loggingnight")

	plainFetcher := implRepo.NewHTTPWebFetcher(cfg.HTTPTimeout, log)

	var store implRepo.CacheStore = implRepo.NewMemoryCacheStore()
	if cfg.MongoURI != "" {
		client, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			log.Warn("MongoDB unavailable, caching in memory only", "error", err)
		} else {
			mongoStore, err := implRepo.NewMongoCacheStore(ctx, persistence.GetDatabase(client, cfg.MongoDB))
			if err != nil {
				log.Warn("Cache store setup failed, caching in memory only", "error", err)
			} else {
				store = mongoStore
			}
		}
	}
	cache := implRepo.NewCachedWebFetcher(plainFetcher, store, m, log)

	timezone, err := implRepo.NewTZFResolver()
	if err != nil {
		return nil, err
	}

	var provider repository.AstroProvider
	switch cfg.AstroProvider {
	case config.ProviderUSNO:
		provider = implRepo.NewUSNOAstroRepository(cfg.AstroAPIURL, cache, timezone, log)
	default:
		provider = implRepo.NewEphemerisAstroRepository(timezone, log)
	}

	airportRepo := implRepo.NewAirportInfoRepository(cfg.AirportAPIURL, cfg.AirportAppID, cache, log)

	var directory repository.AirportDirectoryRepository
	if cfg.PostgresURI != "" {
		db, err := persistence.NewPostgresDB(cfg.PostgresURI)
		if err != nil {
			log.Warn("PostgreSQL unavailable, running without the airport directory", "error", err)
		} else {
			directory, err = implRepo.NewGormAirportDirectory(db)
			if err != nil {
				log.Warn("Airport directory setup failed", "error", err)
				directory = nil
			}
		}
	}

	return usecase.NewNightResolver(airportRepo, directory, provider, cache, cfg.CacheTTL, log, m), nil
}

// printBriefing prints the FAA night-time briefing with the regulatory
// citations attached to each transition.
func printBriefing(result *usecase.Result, date time.Time) {
	times := result.Times
	clock := func(t time.Time) string { return utils.FormatClock(t, times.InZulu) }

	fmt.Printf("Night times for %s (%s) on %s\n", result.Airport.Name, result.Airport.CityState(), date.Format("2006-01-02"))
	fmt.Println()

	if !times.HourBeforeSunrise.IsZero() {
		fmt.Printf("%s -- One hour before sun rise\n", clock(times.HourBeforeSunrise))
		fmt.Println("Logging of night takeoffs and landings ends")
		fmt.Println()
	}
	if !times.Sunrise.IsZero() {
		fmt.Printf("%s -- Sun rise\n", clock(times.Sunrise))
		fmt.Println()
	}

	fmt.Printf("%s -- Sun set\n", clock(times.Sunset))
	fmt.Println("Position lights required")
	fmt.Println("(14 CFR 91.209)")
	fmt.Println()

	fmt.Printf("%s -- End of civil twilight\n", clock(times.EndCivilTwilight))
	fmt.Println("Logging of night time can start and aircraft must be night equipped")
	fmt.Println("(14 CFR 61.51(b)(3)(i), 14 CFR 91.205(c), and 14 CFR 1.1)")
	fmt.Println()

	fmt.Printf("%s -- One hour after sun set\n", clock(times.HourAfterSunset))
	fmt.Println("Must be night current to carry passengers and")
	fmt.Println("logging of night takeoffs and landings can start")
	fmt.Println("(14 CFR 61.57(b))")
}

func exitCode(err error) int {
	var (
		timeoutErr *entity.TimeoutError
		statusErr  *entity.HTTPStatusError
		locErr     *entity.LocationError
	)
	switch {
	case errors.As(err, &timeoutErr):
		return exitTimeout
	case errors.As(err, &statusErr):
		return exitHTTPError
	case errors.As(err, &locErr):
		return exitNoLocation
	default:
		return exitBadInput
	}
}
