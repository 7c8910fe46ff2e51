package utils

import "time"

// DateLayout is the calendar-date format used throughout the engine.
const DateLayout = "2006-01-02"

// FormatDate renders t as a local-timezone calendar date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekStart returns the date string of the most recent Sunday (local time)
// at or before t. A Sunday maps to itself.
func WeekStart(t time.Time) string {
	daysBack := int(t.Weekday()) // Sunday == 0
	return FormatDate(t.AddDate(0, 0, -daysBack))
}

// NextMidnight returns the local-midnight boundary of the next calendar day.
func NextMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
}
