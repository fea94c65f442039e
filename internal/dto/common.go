package dto

import "time"

// DayFormat is the wire format for calendar-day fields.
const DayFormat = "2006-01-02"

// ParseDay parses a calendar-day string in DayFormat (UTC, midnight).
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// FormatDay renders a time as a calendar-day string.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}
