package repository

import (
	"context"
	"errors"
	"time"

	"loggingnight-service/internal/domain/entity"
	"loggingnight-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAirportDirectory implements the AirportDirectoryRepository interface
type GormAirportDirectory struct {
	db *gorm.DB
}

// airportRecord GORM model for database mapping
type airportRecord struct {
	ID        uint    `gorm:"primaryKey"`
	Code      string  `gorm:"column:code;uniqueIndex"`
	Name      string  `gorm:"column:name"`
	City      string  `gorm:"column:city"`
	State     string  `gorm:"column:state"`
	Latitude  float64 `gorm:"column:latitude"`
	Longitude float64 `gorm:"column:longitude"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (airportRecord) TableName() string {
	return "m_airport_directory"
}

// NewGormAirportDirectory creates a new GORM airport directory
func NewGormAirportDirectory(db *gorm.DB) (repository.AirportDirectoryRepository, error) {
	if err := db.AutoMigrate(&airportRecord{}); err != nil {
		return nil, err
	}
	return &GormAirportDirectory{db: db}, nil
}

// GetByCode finds a previously resolved airport by its identifier. A code
// that is not in the directory returns (nil, nil); the caller falls
// through to the remote service.
func (r *GormAirportDirectory) GetByCode(ctx context.Context, code string) (*entity.AirportLocation, error) {
	var record airportRecord
	result := r.db.WithContext(ctx).Where("code = ?", code).First(&record)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	// Convert GORM model to domain entity
	return &entity.AirportLocation{
		Code:      record.Code,
		Name:      record.Name,
		City:      record.City,
		State:     record.State,
		Latitude:  record.Latitude,
		Longitude: record.Longitude,
	}, nil
}

// Save upserts a resolved airport into the directory.
func (r *GormAirportDirectory) Save(ctx context.Context, airport *entity.AirportLocation) error {
	record := airportRecord{
		Code:      airport.Code,
		Name:      airport.Name,
		City:      airport.City,
		State:     airport.State,
		Latitude:  airport.Latitude,
		Longitude: airport.Longitude,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "city", "state", "latitude", "longitude", "updated_at"}),
	}).Create(&record).Error
}
