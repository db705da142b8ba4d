package entity

import "time"

// CacheEntry is one memoized HTTP response. Entries are keyed by the
// canonical URL plus encoded parameters and live until ExpiresAt, after
// which the periodic sweep removes them.
type CacheEntry struct {
	Key       string
	URL       string
	Body      []byte
	ExpiresAt time.Time
}

// Expired reports whether the entry is past its expiry at the given time.
func (e *CacheEntry) Expired(now time.Time) bool {
	return !e.ExpiresAt.After(now)
}
