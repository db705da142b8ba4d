package entity

import "fmt"

// ConfigurationError reports contradictory caller input, detected before
// any I/O happens.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// LocationError reports an airport that could not be resolved to a usable
// location: unknown code, or a record without city or coordinate data.
type LocationError struct {
	Code   string
	Reason string
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("unable to find airport %s: %s (check that you are using the ICAO code, e.g. KDPA rather than DPA)", e.Code, e.Reason)
}

// AstronomicalError reports that no usable sun-phenomenon data could be
// obtained, after both the name-based and coordinate-based lookups for the
// remote provider or after an ephemeris computation failure locally.
type AstronomicalError struct {
	Reason string
	Err    error
}

func (e *AstronomicalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("astronomical lookup failed: %s: %v", e.Reason, e.Err)
	}
	return "astronomical lookup failed: " + e.Reason
}

func (e *AstronomicalError) Unwrap() error { return e.Err }

// TimeoutError reports an outbound call that exceeded its deadline.
// Reported distinctly from HTTP error statuses.
type TimeoutError struct {
	URL string
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("connecting to %s timed out", e.URL)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// HTTPStatusError reports a dependency answering with a non-success
// status.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s returned %d (%s) during an API lookup", e.URL, e.StatusCode, e.Status)
}

// ParseError reports caller-supplied input that could not be understood.
// No downstream lookup is attempted for it.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to understand %q", e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }
