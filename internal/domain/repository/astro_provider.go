package repository

import (
	"context"
	"time"

	"loggingnight-service/internal/domain/entity"
)

// AstroProvider returns the sun-phenomenon instants for an airport on a
// calendar date under the requested time reference. Two implementations
// exist, a remote web-service client and a local ephemeris; which one is
// active is a deployment choice, and callers never depend on the
// difference.
type AstroProvider interface {
	Lookup(ctx context.Context, airport *entity.AirportLocation, date time.Time, ref entity.TimeReference) (*entity.SunTimes, error)
}
