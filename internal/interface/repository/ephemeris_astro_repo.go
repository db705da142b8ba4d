package repository

import (
	"context"
	"time"

	"github.com/sj14/astral/pkg/astral"

	"loggingnight-service/internal/domain/entity"
	"loggingnight-service/internal/domain/repository"
	"loggingnight-service/pkg/logger"
)

// EphemerisAstroRepository computes sun phenomena locally from a solar
// ephemeris, satisfying the same contract as the remote provider without
// any astronomical-data network call. Instants are rounded to the nearest
// minute, matching the remote service's resolution.
type EphemerisAstroRepository struct {
	timezone repository.TimezoneResolver
	logger   logger.Logger
}

// NewEphemerisAstroRepository creates the local astronomical provider
func NewEphemerisAstroRepository(timezone repository.TimezoneResolver, logger logger.Logger) repository.AstroProvider {
	return &EphemerisAstroRepository{
		timezone: timezone,
		logger:   logger,
	}
}

// Lookup computes sunrise, sunset and the civil twilight boundaries for
// the 24-hour window of the airport's local calendar date. When no
// timezone can be resolved for the coordinates the result falls back to
// UTC and is flagged Zulu, mirroring the remote provider's policy.
func (r *EphemerisAstroRepository) Lookup(ctx context.Context, airport *entity.AirportLocation, date time.Time, ref entity.TimeReference) (*entity.SunTimes, error) {
	offset, zoneName, inZulu := resolveReference(r.timezone, airport, date, ref)

	displayZone := time.FixedZone(zoneLabel(offset), int(offset*3600))
	if zoneName != "" {
		if loc, err := time.LoadLocation(zoneName); err == nil {
			displayZone = loc
		}
	}

	year, month, day := date.Date()
	localDate := time.Date(year, month, day, 0, 0, 0, 0, displayZone)

	observer := astral.Observer{
		Latitude:  airport.Latitude,
		Longitude: airport.Longitude,
	}

	sunrise, riseErr := astral.Sunrise(observer, localDate)
	sunset, setErr := astral.Sunset(observer, localDate)
	if riseErr != nil && setErr != nil {
		// Polar day or polar night; the sun never crosses the horizon.
		return nil, &entity.AstronomicalError{
			Reason: "no sunrise or sunset on this date at these coordinates",
			Err:    setErr,
		}
	}

	times := &entity.SunTimes{InZulu: inZulu}
	if riseErr == nil {
		times.Sunrise = sunrise.Round(time.Minute).In(displayZone)
	}
	if setErr == nil {
		times.Sunset = sunset.Round(time.Minute).In(displayZone)
	}

	// At high latitudes around the solstices the sun can stay shallower
	// than six degrees below the horizon all night; fall back to the
	// horizon crossings so the result stays complete.
	dawn, err := astral.Dawn(observer, localDate, astral.DepressionCivil)
	if err != nil {
		times.StartCivilTwilight = times.Sunrise
	} else {
		times.StartCivilTwilight = dawn.Round(time.Minute).In(displayZone)
	}

	dusk, err := astral.Dusk(observer, localDate, astral.DepressionCivil)
	if err != nil {
		times.EndCivilTwilight = times.Sunset
	} else {
		times.EndCivilTwilight = dusk.Round(time.Minute).In(displayZone)
	}

	r.logger.Debug("Computed ephemeris",
		"airport", airport.Code,
		"date", localDate.Format(time.DateOnly),
		"zone", displayZone.String(),
		"sunset", times.Sunset.String())

	return times, nil
}
