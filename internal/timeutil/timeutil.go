// ABOUTME: Time utility functions for day arithmetic and date ranges
// ABOUTME: Provides helpers used by trash retention and the today view

package timeutil

import "time"

// StartOfToday returns midnight (00:00:00) of the current day in local time
func StartOfToday() time.Time {
	return StartOfDay(time.Now())
}

// StartOfDay returns midnight (00:00:00) of the given day in its location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysSince returns the number of whole 24h periods elapsed from t to now.
// Returns 0 when t is in the future.
func DaysSince(t, now time.Time) int {
	d := now.Sub(t)
	if d < 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}
