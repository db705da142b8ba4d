package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"loggingnight-service/internal/domain/entity"
	"loggingnight-service/internal/domain/repository"
	"loggingnight-service/pkg/logger"
	"loggingnight-service/pkg/utils"
)

// AirportInfoRepository resolves airport codes against the remote
// airport-information API. Authentication is a static application
// identifier passed as a query parameter.
type AirportInfoRepository struct {
	baseURL string
	appID   string
	fetcher repository.WebFetcher
	logger  logger.Logger
}

// airportInfoResponse is the wire shape of the airport-information API.
// Coordinates arrive as signed seconds-of-arc with a trailing hemisphere
// letter, e.g. "174066.6241N".
type airportInfoResponse struct {
	ICAO      string `json:"icao"`
	FAA       string `json:"faa"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	City      string `json:"city"`
	State     string `json:"state"`
	Latitude  string `json:"latitude_secs"`
	Longitude string `json:"longitude_secs"`
}

// NewAirportInfoRepository creates a new remote airport resolver
func NewAirportInfoRepository(baseURL, appID string, fetcher repository.WebFetcher, logger logger.Logger) repository.AirportInfoRepository {
	return &AirportInfoRepository{
		baseURL: baseURL,
		appID:   appID,
		fetcher: fetcher,
		logger:  logger,
	}
}

// GetByCode resolves one airport identifier to its location record. A code
// the service does not know, or one it returns without city or coordinate
// data, fails with entity.LocationError.
func (r *AirportInfoRepository) GetByCode(ctx context.Context, code string) (*entity.AirportLocation, error) {
	params := url.Values{}
	// Four-letter identifiers are ICAO; anything shorter is a domestic FAA
	// code.
	if len(code) == 4 {
		params.Set("icao", code)
	} else {
		params.Set("faa", code)
	}
	if r.appID != "" {
		params.Set("appid", r.appID)
	}

	body, err := r.fetcher.Get(ctx, r.baseURL, params)
	if err != nil {
		return nil, err
	}

	var info airportInfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to decode airport response for %s: %w", code, err)
	}

	if info.Name == "" || (info.Location == "" && info.City == "") {
		return nil, &entity.LocationError{Code: code, Reason: "no location data in airport record"}
	}
	if info.Latitude == "" || info.Longitude == "" {
		return nil, &entity.LocationError{Code: code, Reason: "no coordinates in airport record"}
	}

	lat, err := utils.DecodeArcSeconds(info.Latitude)
	if err != nil {
		return nil, fmt.Errorf("bad latitude in airport record for %s: %w", code, err)
	}
	lon, err := utils.DecodeArcSeconds(info.Longitude)
	if err != nil {
		return nil, fmt.Errorf("bad longitude in airport record for %s: %w", code, err)
	}

	city := info.City
	if city == "" {
		city = info.Location
	}

	airport := &entity.AirportLocation{
		Code:      code,
		Name:      info.Name,
		City:      city,
		State:     info.State,
		Latitude:  lat,
		Longitude: lon,
	}

	r.logger.Debug("Resolved airport",
		"code", code,
		"name", airport.Name,
		"lat", airport.Latitude,
		"lon", airport.Longitude)

	return airport, nil
}
