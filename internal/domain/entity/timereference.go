package entity

import "fmt"

// UTC offsets observed on Earth run from -12:00 (Baker Island) to +14:00
// (Line Islands).
const (
	MinUTCOffset = -12.0
	MaxUTCOffset = 14.0
)

// TimeReference selects which time reference applies to a lookup: local
// civil time at the airport (neither field set), a caller-supplied fixed
// UTC offset, or Zulu. Offset and Zulu are mutually exclusive.
type TimeReference struct {
	Offset *float64
	Zulu   bool
}

// LocalReference uses the timezone at the airport's coordinates.
func LocalReference() TimeReference {
	return TimeReference{}
}

// OffsetReference forces a fixed UTC offset in hours.
func OffsetReference(hours float64) TimeReference {
	return TimeReference{Offset: &hours}
}

// ZuluReference forces UTC with Zulu display.
func ZuluReference() TimeReference {
	return TimeReference{Zulu: true}
}

// Validate rejects contradictory or out-of-range references. It must be
// called before any network access happens.
func (r TimeReference) Validate() error {
	if r.Offset != nil && r.Zulu {
		return &ConfigurationError{Reason: "a fixed UTC offset and Zulu time are mutually exclusive"}
	}
	if r.Offset != nil && (*r.Offset < MinUTCOffset || *r.Offset > MaxUTCOffset) {
		return &ConfigurationError{
			Reason: fmt.Sprintf("UTC offset %g is outside the valid range %g..%g", *r.Offset, MinUTCOffset, MaxUTCOffset),
		}
	}
	return nil
}

// Fixed returns the forced offset in hours and whether one applies.
// Zulu is a forced offset of zero.
func (r TimeReference) Fixed() (float64, bool) {
	if r.Zulu {
		return 0, true
	}
	if r.Offset != nil {
		return *r.Offset, true
	}
	return 0, false
}
