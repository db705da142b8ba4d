package entity

import "strings"

// AirportLocation is the resolved geographic record for an airport.
// It is built once by the airport resolver and never mutated afterwards.
type AirportLocation struct {
	Code      string
	Name      string
	City      string
	State     string
	Latitude  float64
	Longitude float64
}

// CityState returns the "City, ST" form used for display.
func (a *AirportLocation) CityState() string {
	city := strings.TrimSpace(a.City)
	state := strings.TrimSpace(a.State)
	if city == "" {
		return state
	}
	if state == "" {
		return city
	}
	return city + ", " + state
}

// PlaceName returns the location string understood by the name-based
// astronomical lookup. The split on "/" is required for airports like KDPA
// where the city is reported as "Chicago / West Chicago".
func (a *AirportLocation) PlaceName() string {
	city := a.City
	if idx := strings.LastIndex(city, "/"); idx >= 0 {
		city = city[idx+1:]
	}
	city = strings.TrimSpace(city)
	state := strings.TrimSpace(a.State)
	if state == "" {
		return city
	}
	return city + ", " + state
}

// HasCoordinates reports whether the record carries a usable position.
// (0, 0) is in the Gulf of Guinea and is never a real airport.
func (a *AirportLocation) HasCoordinates() bool {
	return a.Latitude != 0 || a.Longitude != 0
}

// NormalizeCode trims and uppercases an airport identifier as entered by
// the caller.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
