package usecase

import (
	"context"
	"time"

	"loggingnight-service/internal/domain/repository"
	"loggingnight-service/pkg/logger"
)

// Housekeeper sweeps expired response-cache entries on a periodic timer.
// The sweep only removes entries already past expiry, so it never blocks
// or races in-flight lookups.
type Housekeeper struct {
	cache    repository.ResponseCache
	interval time.Duration
	logger   logger.Logger
}

// NewHousekeeper creates a new cache housekeeper
func NewHousekeeper(cache repository.ResponseCache, interval time.Duration, logger logger.Logger) *Housekeeper {
	return &Housekeeper{
		cache:    cache,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps on every tick until the context is cancelled. Call it in its
// own goroutine.
func (h *Housekeeper) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Cache housekeeping stopped")
			return
		case <-ticker.C:
			removed, err := h.cache.SweepExpired(ctx)
			if err != nil {
				h.logger.Error("Cache sweep failed", "error", err)
				continue
			}
			if removed > 0 {
				h.logger.Info("Swept expired cache entries", "removed", removed)
			}
		}
	}
}
