package utils

import "time"

// Display layouts for resolved instants. Aviation Zulu convention is a
// 4-digit 24-hour clock with a trailing Z; everything else shows a
// 12-hour clock.
const (
	ClockLayout = "03:04 PM"
	ZuluLayout  = "1504"
)

// FormatClock renders an instant for display. The zero time renders as an
// empty string so callers can skip phenomena the provider did not return.
func FormatClock(t time.Time, inZulu bool) string {
	if t.IsZero() {
		return ""
	}
	if inZulu {
		return t.Format(ZuluLayout) + "Z"
	}
	return t.Format(ClockLayout)
}
