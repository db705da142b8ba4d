package repository_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"loggingnight-service/internal/domain/entity"
	implRepo "loggingnight-service/internal/interface/repository"
	"loggingnight-service/pkg/logger"
)

func TestHTTPWebFetcherTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	fetcher := implRepo.NewHTTPWebFetcher(50*time.Millisecond, logger.NewNopLogger())

	_, err := fetcher.Get(context.Background(), server.URL, nil)
	var timeoutErr *entity.TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("Get = %v, want *entity.TimeoutError", err)
	}
}

func TestHTTPWebFetcherNotModifiedIsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))
	defer server.Close()

	fetcher := implRepo.NewHTTPWebFetcher(time.Second, logger.NewNopLogger())

	if _, err := fetcher.Get(context.Background(), server.URL, nil); err != nil {
		t.Fatalf("Get returned error for 304: %v", err)
	}
}

func TestHTTPWebFetcherSendsParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("date") != "05/09/2017" {
			t.Errorf("date param = %q, want 05/09/2017", r.URL.Query().Get("date"))
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	fetcher := implRepo.NewHTTPWebFetcher(time.Second, logger.NewNopLogger())

	body, err := fetcher.Get(context.Background(), server.URL, url.Values{"date": {"05/09/2017"}})
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}
}
