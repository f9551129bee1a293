// Package timeutil provides utility functions for working with
// time-related operations.
package timeutil

import (
	"math"
	"time"
)

// DayKeyFormat is the layout for calendar-day identifiers.
const DayKeyFormat = "2006-01-02"

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// DayKey returns the calendar-day identifier for the given time in its
// location (e.g. 2025-12-25).
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// SecondsBetween reports the number of whole seconds from a to b, rounded to
// the nearest integer and floored at zero.
func SecondsBetween(a, b time.Time) int {
	secs := Round(b.Sub(a).Seconds())
	if secs < 0 {
		secs = 0
	}

	return secs
}
