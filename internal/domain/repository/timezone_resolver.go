package repository

// TimezoneResolver maps coordinates to the IANA timezone name applicable
// at that point on Earth. The second return is false when no zone can be
// determined; callers treat that as UTC/Zulu.
type TimezoneResolver interface {
	ZoneName(lat, lon float64) (string, bool)
}
