// Package time holds the calendar day helpers shared by state keys and audit rows
package time

import "time"

// DayLayout is the calendar day format used in storage keys
const DayLayout = "2006-01-02"

// Day returns the UTC calendar day of t as YYYY-MM-DD
func Day(t time.Time) string { return t.UTC().Format(DayLayout) }

// Midnight returns 00:00 UTC of t's UTC day
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
