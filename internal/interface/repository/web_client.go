package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"loggingnight-service/internal/domain/entity"
	"loggingnight-service/internal/domain/repository"
	"loggingnight-service/pkg/logger"
)

// HTTPWebFetcher performs outbound GET requests against the external APIs.
// Every call carries the configured timeout and fails fast; timeouts and
// HTTP error statuses are reported as distinct error kinds and never
// retried here.
type HTTPWebFetcher struct {
	client *http.Client
	logger logger.Logger
}

// NewHTTPWebFetcher creates a fetcher with a per-call deadline.
func NewHTTPWebFetcher(timeout time.Duration, logger logger.Logger) repository.WebFetcher {
	return &HTTPWebFetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Get performs the request and returns the response body. Statuses outside
// {200, 304} fail with entity.HTTPStatusError; an exceeded deadline fails
// with entity.TimeoutError.
func (f *HTTPWebFetcher) Get(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %s: %w", rawURL, err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	f.logger.Debug("Sending query to remote API", "url", rawURL, "params", params.Encode())

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &entity.TimeoutError{URL: rawURL, Err: err}
		}
		return nil, fmt.Errorf("request to %s failed: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotModified {
		io.Copy(io.Discard, resp.Body)
		return nil, &entity.HTTPStatusError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, &entity.TimeoutError{URL: rawURL, Err: err}
		}
		return nil, fmt.Errorf("failed to read response from %s: %w", rawURL, err)
	}

	f.logger.Debug("Remote query complete",
		"url", rawURL,
		"status", resp.StatusCode,
		"elapsed", time.Since(start).String())

	return body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
