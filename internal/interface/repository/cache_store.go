package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"loggingnight-service/internal/domain/entity"
)

// CacheStore is the storage backend for the response cache. Get returns
// (nil, nil) on a miss. Implementations must be safe for concurrent use;
// the cache itself holds no locks around lookups.
type CacheStore interface {
	Get(ctx context.Context, key string) (*entity.CacheEntry, error)
	Put(ctx context.Context, entry *entity.CacheEntry) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	List(ctx context.Context) ([]entity.CacheEntry, error)
}

// MemoryCacheStore keeps cache entries in process memory. Used when no
// MongoDB is configured and in tests.
type MemoryCacheStore struct {
	mu      sync.RWMutex
	entries map[string]entity.CacheEntry
}

// NewMemoryCacheStore creates an empty in-memory store
func NewMemoryCacheStore() *MemoryCacheStore {
	return &MemoryCacheStore{
		entries: make(map[string]entity.CacheEntry),
	}
}

// Get returns the stored entry for key, expired or not.
func (s *MemoryCacheStore) Get(ctx context.Context, key string) (*entity.CacheEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// Put stores or replaces the entry for its key.
func (s *MemoryCacheStore) Put(ctx context.Context, entry *entity.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entry.Key] = *entry
	return nil
}

// DeleteExpired removes every entry already past expiry.
func (s *MemoryCacheStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for key, entry := range s.entries {
		if entry.Expired(now) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed, nil
}

// List returns all entries, newest expiry first.
func (s *MemoryCacheStore) List(ctx context.Context) ([]entity.CacheEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]entity.CacheEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ExpiresAt.After(entries[j].ExpiresAt)
	})
	return entries, nil
}
