package repository_test

import (
	"context"
	"net/url"
)

// stubTimezone is a canned TimezoneResolver.
type stubTimezone struct {
	zone string
	ok   bool
}

func (s stubTimezone) ZoneName(lat, lon float64) (string, bool) {
	return s.zone, s.ok
}

// scriptedFetcher returns canned bodies in order and records every request
// it saw.
type scriptedFetcher struct {
	responses []fetchResponse
	requests  []fetchRequest
}

type fetchResponse struct {
	body []byte
	err  error
}

type fetchRequest struct {
	url    string
	params url.Values
}

func (f *scriptedFetcher) Get(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	f.requests = append(f.requests, fetchRequest{url: rawURL, params: params})
	if len(f.responses) == 0 {
		return nil, nil
	}
	next := f.responses[0]
	f.responses = f.responses[1:]
	return next.body, next.err
}

func (f *scriptedFetcher) calls() int {
	return len(f.requests)
}
