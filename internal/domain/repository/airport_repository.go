package repository

import (
	"context"

	"loggingnight-service/internal/domain/entity"
)

// AirportInfoRepository resolves an airport identifier against the remote
// airport-information service.
type AirportInfoRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.AirportLocation, error)
}

// AirportDirectoryRepository is the persistent directory of previously
// resolved airports, consulted ahead of the remote service.
type AirportDirectoryRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.AirportLocation, error)
	Save(ctx context.Context, airport *entity.AirportLocation) error
}
