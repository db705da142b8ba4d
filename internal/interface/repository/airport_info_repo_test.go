package repository_test

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loggingnight-service/internal/domain/entity"
	implRepo "loggingnight-service/internal/interface/repository"
	"loggingnight-service/pkg/logger"
)

func TestAirportInfoGetByCode(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"icao":  r.URL.Query().Get("icao"),
			"faa":   r.URL.Query().Get("faa"),
			"appid": r.URL.Query().Get("appid"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"icao": "KSMO",
			"name": "Santa Monica Municipal",
			"city": "Santa Monica",
			"state": "CA",
			"latitude_secs": "122457.0000N",
			"longitude_secs": "426422.0000W"
		}`))
	}))
	defer server.Close()

	fetcher := implRepo.NewHTTPWebFetcher(5*time.Second, logger.NewNopLogger())
	repo := implRepo.NewAirportInfoRepository(server.URL, "test-app", fetcher, logger.NewNopLogger())

	airport, err := repo.GetByCode(context.Background(), "KSMO")
	if err != nil {
		t.Fatalf("GetByCode returned error: %v", err)
	}

	if gotQuery["icao"] != "KSMO" || gotQuery["faa"] != "" {
		t.Errorf("four-letter code sent as %v, want icao=KSMO", gotQuery)
	}
	if gotQuery["appid"] != "test-app" {
		t.Errorf("appid = %q, want test-app", gotQuery["appid"])
	}
	if airport.Name != "Santa Monica Municipal" || airport.CityState() != "Santa Monica, CA" {
		t.Errorf("unexpected airport record: %+v", airport)
	}
	if math.Abs(airport.Latitude-34.0158) > 0.01 {
		t.Errorf("Latitude = %f, want about 34.0158", airport.Latitude)
	}
	if math.Abs(airport.Longitude-(-118.4506)) > 0.01 {
		t.Errorf("Longitude = %f, want about -118.4506", airport.Longitude)
	}
}

func TestAirportInfoShortCodeUsesFAAParam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("faa") != "S50" {
			t.Errorf("faa param = %q, want S50", r.URL.Query().Get("faa"))
		}
		w.Write([]byte(`{
			"faa": "S50",
			"name": "Auburn Municipal",
			"city": "Auburn",
			"state": "WA",
			"latitude_secs": "170008.0000N",
			"longitude_secs": "439863.0000W"
		}`))
	}))
	defer server.Close()

	fetcher := implRepo.NewHTTPWebFetcher(5*time.Second, logger.NewNopLogger())
	repo := implRepo.NewAirportInfoRepository(server.URL, "", fetcher, logger.NewNopLogger())

	if _, err := repo.GetByCode(context.Background(), "S50"); err != nil {
		t.Fatalf("GetByCode returned error: %v", err)
	}
}

func TestAirportInfoUnknownCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The upstream answers 200 with an empty record for unknown codes.
		w.Write([]byte(`{"icao": "", "name": "", "city": "", "state": ""}`))
	}))
	defer server.Close()

	fetcher := implRepo.NewHTTPWebFetcher(5*time.Second, logger.NewNopLogger())
	repo := implRepo.NewAirportInfoRepository(server.URL, "", fetcher, logger.NewNopLogger())

	_, err := repo.GetByCode(context.Background(), "ZZZZ")
	var locErr *entity.LocationError
	if !errors.As(err, &locErr) {
		t.Fatalf("GetByCode = %v, want *entity.LocationError", err)
	}
}

func TestAirportInfoMissingCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"icao": "KSMO", "name": "Santa Monica Municipal", "city": "Santa Monica", "state": "CA"}`))
	}))
	defer server.Close()

	fetcher := implRepo.NewHTTPWebFetcher(5*time.Second, logger.NewNopLogger())
	repo := implRepo.NewAirportInfoRepository(server.URL, "", fetcher, logger.NewNopLogger())

	_, err := repo.GetByCode(context.Background(), "KSMO")
	var locErr *entity.LocationError
	if !errors.As(err, &locErr) {
		t.Fatalf("GetByCode = %v, want *entity.LocationError", err)
	}
}

func TestAirportInfoHTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone fishing", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	fetcher := implRepo.NewHTTPWebFetcher(5*time.Second, logger.NewNopLogger())
	repo := implRepo.NewAirportInfoRepository(server.URL, "", fetcher, logger.NewNopLogger())

	_, err := repo.GetByCode(context.Background(), "KSMO")
	var statusErr *entity.HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("GetByCode = %v, want *entity.HTTPStatusError", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want 503", statusErr.StatusCode)
	}
}

func TestAirportInfoBadHemisphereLetter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"icao": "KSMO", "name": "Santa Monica Municipal", "city": "Santa Monica", "state": "CA", "latitude_secs": "122457.0000Q", "longitude_secs": "426422.0000W"}`))
	}))
	defer server.Close()

	fetcher := implRepo.NewHTTPWebFetcher(5*time.Second, logger.NewNopLogger())
	repo := implRepo.NewAirportInfoRepository(server.URL, "", fetcher, logger.NewNopLogger())

	if _, err := repo.GetByCode(context.Background(), "KSMO"); err == nil {
		t.Fatal("GetByCode accepted an invalid hemisphere letter")
	}
}
