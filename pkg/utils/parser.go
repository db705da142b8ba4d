package utils

import (
	"strconv"
	"strings"
	"time"

	"loggingnight-service/internal/domain/entity"
)

// dateLayouts are the calendar-date forms accepted from callers, tried in
// order.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// ParseDate turns a caller-supplied date string into a calendar date at
// midnight UTC. It fails with entity.ParseError without attempting any
// lookup downstream.
func ParseDate(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, &entity.ParseError{Input: s}
	}

	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, &entity.ParseError{Input: s, Err: firstErr}
}

// DecodeArcSeconds converts a coordinate encoded as signed seconds-of-arc
// with a trailing hemisphere letter into signed decimal degrees, e.g.
// "174066.6241N" -> 48.351840028 and "005400W" -> -1.5. South and west are
// negative; any other trailing letter is an input error.
func DecodeArcSeconds(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < 2 {
		return 0, &entity.ParseError{Input: s}
	}

	hemisphere := trimmed[len(trimmed)-1]
	seconds, err := strconv.ParseFloat(trimmed[:len(trimmed)-1], 64)
	if err != nil {
		return 0, &entity.ParseError{Input: s, Err: err}
	}

	degrees := seconds / 3600
	switch hemisphere {
	case 'N', 'E':
		return degrees, nil
	case 'S', 'W':
		return -degrees, nil
	default:
		return 0, &entity.ParseError{Input: s}
	}
}

// ZoneOffsetHours returns the signed hour offset between UTC and local
// civil time in the named zone at noon on the given date. Sampling the
// offset at noon of the specific date accounts for daylight saving without
// a DST rule table.
func ZoneOffsetHours(zoneName string, date time.Time) (float64, error) {
	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		return 0, err
	}

	year, month, day := date.Date()
	noonUTC := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	noonLocal := time.Date(year, month, day, 12, 0, 0, 0, loc)

	return noonUTC.Sub(noonLocal).Hours(), nil
}
