// Package timeutil parses and formats the time-of-day strings used on
// timetables and measures the gaps between them.
package timeutil

import (
	"math"
	"strings"
	"time"
)

// ParseTime parses a time-of-day string in 24-hour "15:04" or 12-hour
// "3:04 PM" form (case-insensitive). When neither format matches it falls
// back to the current wall-clock time truncated to the minute; callers never
// see a parse error. Known limitation: the fallback can corrupt sort order
// for schedules containing unparsable entries.
func ParseTime(text string) time.Time {
	s := strings.ToUpper(strings.TrimSpace(text))

	if strings.Contains(s, "AM") || strings.Contains(s, "PM") {
		if t, err := time.Parse("3:04 PM", s); err == nil {
			return t
		}
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t
	}
	if t, err := time.Parse("3:04PM", s); err == nil {
		return t
	}

	return time.Now().Truncate(time.Minute)
}

// FormatTime renders a time-of-day as "15:04".
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// DurationMinutes returns the rounded number of minutes from a to b. The
// result is negative when b precedes a; treating that as invalid is the
// caller's responsibility.
func DurationMinutes(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Seconds() / 60))
}
