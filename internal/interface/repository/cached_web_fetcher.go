package repository

import (
	"context"
	"net/url"
	"sync"
	"time"

	"loggingnight-service/internal/domain/entity"
	"loggingnight-service/internal/domain/repository"
	"loggingnight-service/pkg/logger"
	"loggingnight-service/pkg/metrics"
)

// CachedWebFetcher wraps a WebFetcher with response memoization keyed by
// URL and parameters. Until Enable is called, or when no store backs it,
// every call passes straight through to the network. Errors are never
// cached.
type CachedWebFetcher struct {
	inner   repository.WebFetcher
	store   CacheStore
	logger  logger.Logger
	metrics *metrics.Metrics

	mu      sync.RWMutex
	enabled bool
	ttl     time.Duration
}

// NewCachedWebFetcher creates the cache around inner. A nil store means
// caching is unavailable in this process; Enable then reports false and
// the fetcher stays cold.
func NewCachedWebFetcher(inner repository.WebFetcher, store CacheStore, m *metrics.Metrics, logger logger.Logger) *CachedWebFetcher {
	return &CachedWebFetcher{
		inner:   inner,
		store:   store,
		logger:  logger,
		metrics: m,
	}
}

// Enable turns memoization on with the given time-to-live. Enabling is
// idempotent; the first call wins and later TTLs are ignored.
func (c *CachedWebFetcher) Enable(ctx context.Context, ttl time.Duration) bool {
	if c.store == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		c.enabled = true
		c.ttl = ttl
		c.logger.Info("Response cache enabled", "ttl", ttl.String())
	}
	return true
}

// Get serves the response from the store when a live entry exists,
// otherwise fetches and memoizes it. Store failures degrade to a plain
// fetch rather than failing the lookup.
func (c *CachedWebFetcher) Get(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	c.mu.RLock()
	enabled, ttl := c.enabled, c.ttl
	c.mu.RUnlock()

	if !enabled {
		return c.inner.Get(ctx, rawURL, params)
	}

	key := cacheKey(rawURL, params)
	now := time.Now()

	entry, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Cache read failed, fetching directly", "url", rawURL, "error", err)
	} else if entry != nil && !entry.Expired(now) {
		if c.metrics != nil {
			c.metrics.CacheHits.Inc()
		}
		return entry.Body, nil
	}

	if c.metrics != nil {
		c.metrics.CacheMisses.Inc()
	}

	body, err := c.inner.Get(ctx, rawURL, params)
	if err != nil {
		return nil, err
	}

	if putErr := c.store.Put(ctx, &entity.CacheEntry{
		Key:       key,
		URL:       rawURL,
		Body:      body,
		ExpiresAt: now.Add(ttl),
	}); putErr != nil {
		c.logger.Warn("Cache write failed", "url", rawURL, "error", putErr)
	}

	return body, nil
}

// SweepExpired removes entries past expiry and reports how many went.
func (c *CachedWebFetcher) SweepExpired(ctx context.Context) (int64, error) {
	if c.store == nil {
		return 0, nil
	}
	return c.store.DeleteExpired(ctx, time.Now())
}

// Entries lists the cached responses, newest expiry first.
func (c *CachedWebFetcher) Entries(ctx context.Context) ([]entity.CacheEntry, error) {
	if c.store == nil {
		return nil, nil
	}
	return c.store.List(ctx)
}

// cacheKey canonicalizes a request; Encode sorts parameters so equivalent
// requests share an entry.
func cacheKey(rawURL string, params url.Values) string {
	if len(params) == 0 {
		return rawURL
	}
	return rawURL + "?" + params.Encode()
}
