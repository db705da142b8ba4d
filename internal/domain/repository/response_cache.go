package repository

import (
	"context"
	"time"

	"loggingnight-service/internal/domain/entity"
)

// ResponseCache memoizes outbound GET responses by URL and parameters for
// a time-to-live. Enabling is idempotent and returns false when no cache
// store is available in this process, in which case every call fetches.
type ResponseCache interface {
	Enable(ctx context.Context, ttl time.Duration) bool
	SweepExpired(ctx context.Context) (int64, error)
	Entries(ctx context.Context) ([]entity.CacheEntry, error)
}
