package period

import (
	"time"
)

// EffectiveStatus projects the status a period should display at the given
// instant. The stored NominalStatus is the only durable fact; "active" and
// "completed" for elapsed windows are computed on every read instead of being
// persisted, so every list, filter and report agrees at the same instant.
//
// Rules:
//   - unparseable start or end date: the window cannot be reasoned about,
//     return NominalStatus unchanged
//   - cancelled is terminal and never overridden
//   - now past the end of the last day: completed
//   - scheduled and now inside [start, end-of-last-day]: active
//   - anything else: NominalStatus unchanged
func EffectiveStatus(p Period, now time.Time) Status {
	start, err := ParseDate(p.StartDate)
	if err != nil {
		return p.NominalStatus
	}
	end, err := ParseDate(p.EndDate)
	if err != nil {
		return p.NominalStatus
	}

	if p.NominalStatus == StatusCancelled {
		return StatusCancelled
	}

	endOfLastDay := EndOfDay(end)
	if now.After(endOfLastDay) {
		return StatusCompleted
	}
	if p.NominalStatus == StatusScheduled && !now.Before(start) && !now.After(endOfLastDay) {
		return StatusActive
	}
	return p.NominalStatus
}

// Overlaps reports whether the period's [start, end-of-last-day] interval
// intersects [from, to]. Periods with unparseable dates never overlap.
func Overlaps(p Period, from time.Time, to time.Time) bool {
	start, err := ParseDate(p.StartDate)
	if err != nil {
		return false
	}
	end, err := ParseDate(p.EndDate)
	if err != nil {
		return false
	}
	return !start.After(to) && !EndOfDay(end).Before(from)
}
