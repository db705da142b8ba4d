package repository

import (
	"context"
	"net/url"
)

// WebFetcher performs an outbound GET and returns the response body.
// Implementations fail with entity.TimeoutError on deadline and
// entity.HTTPStatusError on any status outside {200, 304}.
type WebFetcher interface {
	Get(ctx context.Context, rawURL string, params url.Values) ([]byte, error)
}
