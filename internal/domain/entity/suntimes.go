package entity

import "time"

// SunTimes holds the sun-phenomenon instants for one airport and date.
// Base fields are zero when the active provider does not expose them;
// derived fields are filled by ComputeDerived from whichever base instants
// are present. InZulu marks results that must be displayed without
// local-time conversion.
type SunTimes struct {
	Sunrise            time.Time
	Sunset             time.Time
	StartCivilTwilight time.Time
	EndCivilTwilight   time.Time
	HourBeforeSunrise  time.Time
	HourAfterSunset    time.Time
	InZulu             bool
}

// ComputeDerived fills the one-hour regulatory margins from the base
// instants. 14 CFR 61.57(b) night currency runs from one hour after
// sunset to one hour before sunrise.
func (s *SunTimes) ComputeDerived() {
	if !s.Sunset.IsZero() {
		s.HourAfterSunset = s.Sunset.Add(time.Hour)
	}
	if !s.Sunrise.IsZero() {
		s.HourBeforeSunrise = s.Sunrise.Add(-time.Hour)
	}
}
