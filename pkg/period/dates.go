package period

import (
	"errors"
	"time"
)

var ErrUnparseableDate = errors.New("unparseable date")

// datePatterns are tried in order. Legacy records created before the text
// migration carry full RFC3339 timestamps; newer ones use the ISO calendar
// form and manually fixed rows use the day-first form.
var datePatterns = []string{
	time.RFC3339,
	"2006-01-02",
	"02/01/2006",
}

// ParseDate normalizes a stored date value to the first instant of its
// calendar day in local time. It never panics on malformed input; callers get
// ErrUnparseableDate and decide how to degrade, typically by excluding the
// record from date-based computations.
func ParseDate(value string) (time.Time, error) {
	for _, pattern := range datePatterns {
		parsed, err := time.Parse(pattern, value)
		if err != nil {
			continue
		}
		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.Local), nil
	}
	return time.Time{}, ErrUnparseableDate
}

// FormatDate renders a date in the display format used everywhere in the UI
// and in report exports: day-first with a 4-digit year.
func FormatDate(date time.Time) string {
	return date.Format("02/01/2006")
}

// EndOfDay returns the last instant of the given date's calendar day.
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 999999999, date.Location())
}
