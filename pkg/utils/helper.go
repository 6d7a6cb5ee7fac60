package utils

import (
	"time"
)

const (
	// DateLayout is the wire format for calendar dates (show dates, ranges).
	DateLayout = "2006-01-02"
	// TimeOfDayLayout is the wire format for show start/end times.
	TimeOfDayLayout = "15:04"
)

// ParseDate converts a YYYY-MM-DD string into a UTC midnight timestamp.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

// ParseTimeOfDay converts an HH:MM string into a time carrying only the
// hour and minute components.
func ParseTimeOfDay(value string) (time.Time, error) {
	return time.ParseInLocation(TimeOfDayLayout, value, time.UTC)
}

// CombineDateTime merges a calendar date with a time-of-day into a single
// timestamp in UTC. Used to compute the actual start instant of a show on
// a given date.
func CombineDateTime(date, timeOfDay time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), 0, 0,
		time.UTC,
	)
}

// DateOnly truncates a timestamp to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
