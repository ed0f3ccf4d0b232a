package advisor

import "time"

// DateLayout is the date key format used across the timeline.
const DateLayout = "2006-01-02"

// DateOnly reduces t to its calendar date at midnight UTC. All due-date
// comparisons in this package are date-only; instant arithmetic near
// midnight produces off-by-one-day urgency errors.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed number of calendar days from from to to.
// Negative means to is in the past.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}
