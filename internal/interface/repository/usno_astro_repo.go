package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"loggingnight-service/internal/domain/entity"
	"loggingnight-service/internal/domain/repository"
	"loggingnight-service/pkg/logger"
	"loggingnight-service/pkg/utils"
)

// USNOAstroRepository queries the naval-observatory style one-day API for
// sun phenomena. The service recognizes some place names and not others,
// so the lookup tries the airport's place name first and falls back to raw
// coordinates whenever the name-based response carries no usable
// phenomena.
type USNOAstroRepository struct {
	baseURL  string
	fetcher  repository.WebFetcher
	timezone repository.TimezoneResolver
	logger   logger.Logger
}

// usnoResponse covers both payload generations of the one-day API: the
// current one nests sundata under properties.data, the legacy one carries
// it at the top level.
type usnoResponse struct {
	Properties *usnoProperties  `json:"properties"`
	Sundata    []usnoPhenomenon `json:"sundata"`
}

type usnoProperties struct {
	Data usnoData `json:"data"`
}

type usnoData struct {
	Sundata []usnoPhenomenon `json:"sundata"`
}

type usnoPhenomenon struct {
	Phen string `json:"phen"`
	Time string `json:"time"`
}

// NewUSNOAstroRepository creates the remote astronomical provider
func NewUSNOAstroRepository(baseURL string, fetcher repository.WebFetcher, timezone repository.TimezoneResolver, logger logger.Logger) repository.AstroProvider {
	return &USNOAstroRepository{
		baseURL:  baseURL,
		fetcher:  fetcher,
		timezone: timezone,
		logger:   logger,
	}
}

// Lookup fetches the sun phenomena for the airport and date. The time
// reference decides the tz parameter: a forced offset is used verbatim,
// otherwise the offset is sampled at local noon in the zone covering the
// airport's coordinates, and an unresolvable zone degrades to Zulu.
func (r *USNOAstroRepository) Lookup(ctx context.Context, airport *entity.AirportLocation, date time.Time, ref entity.TimeReference) (*entity.SunTimes, error) {
	offset, _, inZulu := resolveReference(r.timezone, airport, date, ref)

	base := url.Values{}
	base.Set("date", date.Format("01/02/2006"))
	base.Set("tz", strconv.FormatFloat(offset, 'f', -1, 64))

	// Name-based lookup first.
	byName := cloneValues(base)
	byName.Set("loc", airport.PlaceName())

	phenomena, nameErr := r.fetchPhenomena(ctx, byName)
	if nameErr != nil {
		var timeout *entity.TimeoutError
		if errors.As(nameErr, &timeout) {
			return nil, nameErr
		}
		r.logger.Debug("Name-based lookup returned no usable phenomena, falling back to coordinates",
			"loc", airport.PlaceName(), "error", nameErr.Error())

		byCoords := cloneValues(base)
		byCoords.Set("coords", fmt.Sprintf("%.4f,%.4f", airport.Latitude, airport.Longitude))

		var coordErr error
		phenomena, coordErr = r.fetchPhenomena(ctx, byCoords)
		if coordErr != nil {
			var timeout *entity.TimeoutError
			if errors.As(coordErr, &timeout) {
				return nil, coordErr
			}
			return nil, &entity.AstronomicalError{
				Reason: "both name-based and coordinate-based lookups failed",
				Err:    coordErr,
			}
		}
	}

	times, err := r.assembleSunTimes(phenomena, date, offset, inZulu)
	if err != nil {
		return nil, err
	}
	return times, nil
}

// fetchPhenomena performs one one-day query and extracts the sundata list.
// An empty list is an error so the caller can trigger the coordinate
// fallback.
func (r *USNOAstroRepository) fetchPhenomena(ctx context.Context, params url.Values) ([]usnoPhenomenon, error) {
	body, err := r.fetcher.Get(ctx, r.baseURL, params)
	if err != nil {
		return nil, err
	}

	var resp usnoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode astronomical response: %w", err)
	}

	sundata := resp.Sundata
	if resp.Properties != nil && len(resp.Properties.Data.Sundata) > 0 {
		sundata = resp.Properties.Data.Sundata
	}
	if len(sundata) == 0 {
		return nil, errors.New("response carries no sun phenomena")
	}
	return sundata, nil
}

// assembleSunTimes maps the named phenomena onto absolute instants in the
// reference offset.
func (r *USNOAstroRepository) assembleSunTimes(phenomena []usnoPhenomenon, date time.Time, offset float64, inZulu bool) (*entity.SunTimes, error) {
	zone := time.FixedZone(zoneLabel(offset), int(offset*3600))
	times := &entity.SunTimes{InZulu: inZulu}

	for _, p := range phenomena {
		instant, err := parsePhenomenonTime(p.Time, date, zone)
		if err != nil {
			return nil, &entity.AstronomicalError{
				Reason: fmt.Sprintf("unparseable time %q for phenomenon %q", p.Time, p.Phen),
				Err:    err,
			}
		}

		switch normalizePhen(p.Phen) {
		case "BC":
			times.StartCivilTwilight = instant
		case "R":
			times.Sunrise = instant
		case "S":
			times.Sunset = instant
		case "EC":
			times.EndCivilTwilight = instant
		}
	}

	if times.Sunset.IsZero() || times.EndCivilTwilight.IsZero() {
		return nil, &entity.AstronomicalError{Reason: "response lacks sunset or end of civil twilight"}
	}
	return times, nil
}

// normalizePhen maps both the legacy phenomenon codes and the current
// long labels onto the legacy codes.
func normalizePhen(phen string) string {
	switch strings.ToUpper(strings.TrimSpace(phen)) {
	case "BC", "BEGIN CIVIL TWILIGHT":
		return "BC"
	case "R", "RISE":
		return "R"
	case "S", "SET":
		return "S"
	case "EC", "END CIVIL TWILIGHT":
		return "EC"
	default:
		return ""
	}
}

// phenomenon times arrive as a bare clock, either 24-hour or 12-hour with
// a meridiem marker ("20:14", "8:14 p.m.", "8:14 PM").
var clockLayouts = []string{"15:04", "3:04 PM"}

func parsePhenomenonTime(value string, date time.Time, zone *time.Location) (time.Time, error) {
	cleaned := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(value), ".", ""))

	var firstErr error
	for _, layout := range clockLayouts {
		clock, err := time.Parse(layout, cleaned)
		if err == nil {
			year, month, day := date.Date()
			return time.Date(year, month, day, clock.Hour(), clock.Minute(), 0, 0, zone), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// resolveReference turns a TimeReference into the hour offset, the IANA
// zone when one applies, and the Zulu display flag. Shared by both
// providers so they degrade identically when no zone covers the
// coordinates.
func resolveReference(tz repository.TimezoneResolver, airport *entity.AirportLocation, date time.Time, ref entity.TimeReference) (offset float64, zoneName string, inZulu bool) {
	if forced, ok := ref.Fixed(); ok {
		return forced, "", forced == 0
	}

	name, ok := tz.ZoneName(airport.Latitude, airport.Longitude)
	if !ok {
		return 0, "", true
	}

	offset, err := utils.ZoneOffsetHours(name, date)
	if err != nil {
		// Zone name with no tzdata entry on this host.
		return 0, "", true
	}
	return offset, name, false
}

func zoneLabel(offset float64) string {
	if offset == 0 {
		return "UTC"
	}
	return fmt.Sprintf("UTC%+g", offset)
}

func cloneValues(v url.Values) url.Values {
	out := url.Values{}
	for key, vals := range v {
		for _, val := range vals {
			out.Add(key, val)
		}
	}
	return out
}
