// ABOUTME: Tests for time utility functions
// ABOUTME: Verifies day arithmetic used by retention and the today view

package timeutil

import (
	"testing"
	"time"
)

func TestStartOfToday(t *testing.T) {
	result := StartOfToday()
	now := time.Now()

	if result.Year() != now.Year() || result.Month() != now.Month() || result.Day() != now.Day() {
		t.Errorf("StartOfToday() date mismatch: got %v, expected date %v", result, now)
	}

	if result.Hour() != 0 || result.Minute() != 0 || result.Second() != 0 {
		t.Errorf("StartOfToday() should be midnight, got %v", result)
	}
}

func TestSameDay(t *testing.T) {
	base := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.Local)
	tests := []struct {
		name     string
		a, b     time.Time
		expected bool
	}{
		{"same moment", base, base, true},
		{"same day different hour", base, base.Add(10 * time.Hour), true},
		{"next day", base, base.AddDate(0, 0, 1), false},
		{"previous day", base, base.AddDate(0, 0, -1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SameDay(tc.a, tc.b); got != tc.expected {
				t.Errorf("SameDay(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		t        time.Time
		expected int
	}{
		{"same time", now, 0},
		{"12 hours ago", now.Add(-12 * time.Hour), 0},
		{"exactly one day", now.Add(-24 * time.Hour), 1},
		{"29 days", now.Add(-29 * 24 * time.Hour), 29},
		{"31 days", now.Add(-31 * 24 * time.Hour), 31},
		{"future", now.Add(24 * time.Hour), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysSince(tc.t, now); got != tc.expected {
				t.Errorf("DaysSince = %d, expected %d", got, tc.expected)
			}
		})
	}
}
