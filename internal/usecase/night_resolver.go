package usecase

import (
	"context"
	"errors"
	"time"

	"loggingnight-service/internal/domain/entity"
	"loggingnight-service/internal/domain/repository"
	"loggingnight-service/pkg/logger"
	"loggingnight-service/pkg/metrics"
)

// Request is one night-time resolution request as received from the CLI
// or web caller. Offset and Zulu are mutually exclusive.
type Request struct {
	Code     string
	Date     time.Time
	Offset   *float64
	Zulu     bool
	UseCache bool
}

// Result pairs the resolved airport with its sun times for display.
type Result struct {
	Airport *entity.AirportLocation
	Times   *entity.SunTimes
}

// NightResolver ties airport resolution, the time reference rules and the
// active astronomical provider together. It owns no state across
// requests; the optional cache and directory are shared, long-lived
// collaborators passed in at construction.
type NightResolver struct {
	airportRepo repository.AirportInfoRepository
	directory   repository.AirportDirectoryRepository
	provider    repository.AstroProvider
	cache       repository.ResponseCache
	cacheTTL    time.Duration
	logger      logger.Logger
	metrics     *metrics.Metrics
}

// NewNightResolver creates a new night-time resolver. directory and cache
// may be nil when the deployment runs without PostgreSQL or MongoDB.
func NewNightResolver(
	airportRepo repository.AirportInfoRepository,
	directory repository.AirportDirectoryRepository,
	provider repository.AstroProvider,
	cache repository.ResponseCache,
	cacheTTL time.Duration,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *NightResolver {
	return &NightResolver{
		airportRepo: airportRepo,
		directory:   directory,
		provider:    provider,
		cache:       cache,
		cacheTTL:    cacheTTL,
		logger:      logger,
		metrics:     metrics,
	}
}

// Resolve produces the complete set of lighting-transition times for one
// airport and date. Contradictory references are rejected before any
// network access; every downstream error propagates unmodified.
func (nr *NightResolver) Resolve(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	code := entity.NormalizeCode(req.Code)
	if code == "" {
		return nil, &entity.LocationError{Code: req.Code, Reason: "empty airport identifier"}
	}

	ref := entity.TimeReference{Offset: req.Offset, Zulu: req.Zulu}
	if err := ref.Validate(); err != nil {
		nr.countError(err)
		return nil, err
	}

	if req.UseCache && nr.cache != nil {
		if !nr.cache.Enable(ctx, nr.cacheTTL) {
			nr.logger.Debug("Caching unavailable, proceeding cold")
		}
	}

	airport, err := nr.resolveAirport(ctx, code)
	if err != nil {
		nr.countError(err)
		return nil, err
	}

	times, err := nr.provider.Lookup(ctx, airport, req.Date, ref)
	if err != nil {
		nr.countError(err)
		return nil, err
	}

	times.ComputeDerived()

	if nr.metrics != nil {
		nr.metrics.LookupsPerformed.Inc()
		nr.metrics.LookupDuration.Observe(time.Since(start).Seconds())
	}

	nr.logger.Info("Resolved night times",
		"airport", code,
		"date", req.Date.Format(time.DateOnly),
		"inZulu", times.InZulu)

	return &Result{Airport: airport, Times: times}, nil
}

// resolveAirport consults the persistent directory first and falls through
// to the remote service, persisting what it learns. Directory failures
// only cost the shortcut, never the lookup.
func (nr *NightResolver) resolveAirport(ctx context.Context, code string) (*entity.AirportLocation, error) {
	if nr.directory != nil {
		airport, err := nr.directory.GetByCode(ctx, code)
		if err != nil {
			nr.logger.Warn("Airport directory read failed", "code", code, "error", err)
		} else if airport != nil && airport.HasCoordinates() {
			nr.logger.Debug("Airport served from directory", "code", code)
			return airport, nil
		}
	}

	airport, err := nr.airportRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if nr.directory != nil {
		if err := nr.directory.Save(ctx, airport); err != nil {
			nr.logger.Warn("Airport directory write failed", "code", code, "error", err)
		}
	}

	return airport, nil
}

func (nr *NightResolver) countError(err error) {
	if nr.metrics == nil {
		return
	}
	nr.metrics.ErrorsCount.WithLabelValues(errorKind(err)).Inc()
}

func errorKind(err error) string {
	var (
		confErr    *entity.ConfigurationError
		locErr     *entity.LocationError
		astroErr   *entity.AstronomicalError
		timeoutErr *entity.TimeoutError
		statusErr  *entity.HTTPStatusError
		parseErr   *entity.ParseError
	)
	switch {
	case errors.As(err, &confErr):
		return "configuration"
	case errors.As(err, &timeoutErr):
		return "timeout"
	case errors.As(err, &statusErr):
		return "http_status"
	case errors.As(err, &locErr):
		return "location"
	case errors.As(err, &astroErr):
		return "astronomical"
	case errors.As(err, &parseErr):
		return "parse"
	default:
		return "other"
	}
}
