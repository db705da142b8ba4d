package repository

import (
	"fmt"

	"github.com/ringsaturn/tzf"

	"loggingnight-service/internal/domain/repository"
)

// TZFResolver resolves IANA timezone names from coordinates using the
// embedded tzf polygon data. Construct once at startup and share; the
// finder loads its dataset into memory.
type TZFResolver struct {
	finder tzf.F
}

// NewTZFResolver creates the shared timezone resolver.
func NewTZFResolver() (repository.TimezoneResolver, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize timezone finder: %w", err)
	}
	return &TZFResolver{finder: finder}, nil
}

// ZoneName returns the IANA zone at the given coordinates, or false when
// no zone covers them (open ocean); callers treat that as UTC/Zulu.
func (r *TZFResolver) ZoneName(lat, lon float64) (string, bool) {
	name := r.finder.GetTimezoneName(lon, lat)
	return name, name != ""
}
