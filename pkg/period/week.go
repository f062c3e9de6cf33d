package period

import (
	"time"
)

// The operational week runs from Sunday to Saturday, matching how the studio
// plans its follow-up work.

// StartOfWeek returns the first instant of the Sunday of the week containing
// the reference date.
func StartOfWeek(reference time.Time) time.Time {
	sunday := reference.AddDate(0, 0, -int(reference.Weekday()))
	return time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, reference.Location())
}

// EndOfWeek returns the last instant of the Saturday of the week containing
// the reference date.
func EndOfWeek(reference time.Time) time.Time {
	saturday := reference.AddDate(0, 0, 6-int(reference.Weekday()))
	return EndOfDay(saturday)
}

// IsWithinCurrentWeek reports whether the stored date falls inside the week
// containing now, both boundaries inclusive. Unparseable dates are never
// within the week.
func IsWithinCurrentWeek(value string, now time.Time) bool {
	date, err := ParseDate(value)
	if err != nil {
		return false
	}
	return !date.Before(StartOfWeek(now)) && !date.After(EndOfWeek(now))
}
