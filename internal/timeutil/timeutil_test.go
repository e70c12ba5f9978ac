package timeutil

import (
	"testing"
	"time"
)

func TestParseTimeFormats(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"24-hour", "09:30", "09:30"},
		{"24-hour no leading zero", "9:30", "09:30"},
		{"24-hour afternoon", "14:05", "14:05"},
		{"12-hour AM", "9:30 AM", "09:30"},
		{"12-hour PM", "2:15 PM", "14:15"},
		{"12-hour lowercase", "2:15 pm", "14:15"},
		{"12-hour no space", "11:45PM", "23:45"},
		{"surrounding whitespace", "  10:00  ", "10:00"},
		{"noon", "12:00 PM", "12:00"},
		{"midnight", "12:00 AM", "00:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatTime(ParseTime(tc.input))
			if got != tc.expected {
				t.Errorf("ParseTime(%q) = %s, want %s", tc.input, got, tc.expected)
			}
		})
	}
}

func TestParseTimeFallback(t *testing.T) {
	// Unparsable input degrades to the current wall clock truncated to the
	// minute instead of erroring.
	before := time.Now().Truncate(time.Minute)
	got := ParseTime("not a time")
	after := time.Now().Truncate(time.Minute)

	if got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("fallback time not truncated to minute: %v", got)
	}
	if got.Before(before) || got.After(after.Add(time.Minute)) {
		t.Errorf("fallback time %v outside expected window [%v, %v]", got, before, after)
	}
}

func TestDurationMinutes(t *testing.T) {
	testCases := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{"quarter hour", "10:00", "10:15", 15},
		{"one hour", "09:00", "10:00", 60},
		{"zero", "12:30", "12:30", 0},
		{"negative when reversed", "11:00", "10:30", -30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DurationMinutes(ParseTime(tc.a), ParseTime(tc.b))
			if got != tc.expected {
				t.Errorf("DurationMinutes(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}
