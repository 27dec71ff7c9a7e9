package util

import (
	"fmt"
	"time"
)

// DateOnly truncates a timestamp to midnight UTC so calendar-date comparisons
// ignore the time of day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date at midnight UTC.
func Today() time.Time {
	return DateOnly(time.Now().UTC())
}

// InWindow reports whether d lies in the inclusive range [start, end].
func InWindow(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

// MonthKey returns the month bucket key for a date, e.g. "2025-12".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// QuarterKey returns the quarter bucket key for a date, e.g. "2025-Q4".
func QuarterKey(t time.Time) string {
	quarter := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("%d-Q%d", t.Year(), quarter)
}

// YearKey returns the year bucket key for a date, e.g. "2025".
func YearKey(t time.Time) string {
	return t.Format("2006")
}
