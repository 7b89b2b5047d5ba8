package planner

import "time"

// DayLayout is the storage format for calendar days.
const DayLayout = "2006-01-02"

// parseDay parses a YYYY-MM-DD string to UTC midnight.
func parseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// daysBetween returns the exact calendar-day difference a-b. Both values come
// from parseDay, so the division is exact and time zones cannot skew it.
func daysBetween(a, b time.Time) int {
	return int(a.Sub(b) / (24 * time.Hour))
}
