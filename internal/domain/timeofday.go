package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a civil time of day (hours and minutes), independent of any
// calendar day, location, or serialization format. Event opening and closing
// times are stored as TimeOfDay and anchored to the event's calendar day only
// when a scan is evaluated.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (24-hour clock) into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", s)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

// String returns the canonical "HH:MM" form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MarshalJSON encodes the time as an "HH:MM" JSON string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON decodes an "HH:MM" JSON string.
func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid time of day JSON: %s", s)
	}
	parsed, err := ParseTimeOfDay(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

// On anchors the time of day to the calendar day of the given instant, in
// that instant's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, day.Location())
}

// CivilDay returns midnight of the instant's calendar day in its location.
func CivilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from a to b (b - a), using
// day-granularity subtraction rather than 24-hour-interval math so daylight
// saving shifts cannot skew the count. Both instants are reduced to their
// own calendar day first.
func DaysBetween(a, b time.Time) int {
	// Anchor both days at UTC noon so the difference is an exact multiple of 24h.
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	an := time.Date(ay, am, ad, 12, 0, 0, 0, time.UTC)
	bn := time.Date(by, bm, bd, 12, 0, 0, 0, time.UTC)
	return int(bn.Sub(an) / (24 * time.Hour))
}

// SameDay reports whether the two instants fall on the same calendar day,
// each in its own location.
func SameDay(a, b time.Time) bool {
	return DaysBetween(a, b) == 0
}
