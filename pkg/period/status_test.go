package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func scheduledPeriod() Period {
	return Period{
		Id:            "period-1",
		ClientName:    "Acme Mall",
		StartDate:     "2025-12-20",
		EndDate:       "2025-12-26",
		NominalStatus: StatusScheduled,
	}
}

func TestEffectiveStatus(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		now    time.Time
		want   Status
	}{
		{
			name:   "scheduled period inside its window is on air",
			period: scheduledPeriod(),
			now:    time.Date(2025, 12, 23, 12, 0, 0, 0, time.Local),
			want:   StatusActive,
		},
		{
			name:   "scheduled period is active from the first instant of its start day",
			period: scheduledPeriod(),
			now:    time.Date(2025, 12, 20, 0, 0, 0, 0, time.Local),
			want:   StatusActive,
		},
		{
			name:   "scheduled period is still active at the last instant of its end day",
			period: scheduledPeriod(),
			now:    time.Date(2025, 12, 26, 23, 59, 59, 0, time.Local),
			want:   StatusActive,
		},
		{
			name:   "elapsed window is completed",
			period: scheduledPeriod(),
			now:    time.Date(2025, 12, 27, 0, 0, 0, 0, time.Local),
			want:   StatusCompleted,
		},
		{
			name:   "scheduled period before its window stays scheduled",
			period: scheduledPeriod(),
			now:    time.Date(2025, 12, 19, 23, 59, 59, 0, time.Local),
			want:   StatusScheduled,
		},
		{
			name: "draft inside the window stays draft",
			period: Period{
				StartDate:     "2025-12-20",
				EndDate:       "2025-12-26",
				NominalStatus: StatusDraft,
			},
			now:  time.Date(2025, 12, 23, 12, 0, 0, 0, time.Local),
			want: StatusDraft,
		},
		{
			name: "draft past the window is completed",
			period: Period{
				StartDate:     "2025-12-20",
				EndDate:       "2025-12-26",
				NominalStatus: StatusDraft,
			},
			now:  time.Date(2026, 1, 2, 0, 0, 0, 0, time.Local),
			want: StatusCompleted,
		},
		{
			name: "cancelled is terminal even after the window elapsed",
			period: Period{
				StartDate:     "2025-12-20",
				EndDate:       "2025-12-26",
				NominalStatus: StatusCancelled,
			},
			now:  time.Date(2026, 1, 2, 0, 0, 0, 0, time.Local),
			want: StatusCancelled,
		},
		{
			name: "unparseable start date falls back to the stored status",
			period: Period{
				StartDate:     "someday",
				EndDate:       "2025-12-26",
				NominalStatus: StatusScheduled,
			},
			now:  time.Date(2025, 12, 23, 12, 0, 0, 0, time.Local),
			want: StatusScheduled,
		},
		{
			name: "unparseable end date falls back to the stored status",
			period: Period{
				StartDate:     "2025-12-20",
				EndDate:       "",
				NominalStatus: StatusScheduled,
			},
			now:  time.Date(2025, 12, 23, 12, 0, 0, 0, time.Local),
			want: StatusScheduled,
		},
		{
			name: "day-first encoded window works the same",
			period: Period{
				StartDate:     "20/12/2025",
				EndDate:       "26/12/2025",
				NominalStatus: StatusScheduled,
			},
			now:  time.Date(2025, 12, 23, 12, 0, 0, 0, time.Local),
			want: StatusActive,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveStatus(tt.period, tt.now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEffectiveStatus_DoesNotMutate(t *testing.T) {
	period := scheduledPeriod()
	now := time.Date(2025, 12, 23, 12, 0, 0, 0, time.Local)

	first := EffectiveStatus(period, now)
	second := EffectiveStatus(period, now)

	assert.Equal(t, first, second)
	assert.Equal(t, StatusScheduled, period.NominalStatus, "projection must never write the stored status")
}

func TestOverlaps(t *testing.T) {
	weekStart := time.Date(2025, 12, 21, 0, 0, 0, 0, time.Local)
	weekEnd := EndOfDay(time.Date(2025, 12, 27, 0, 0, 0, 0, time.Local))

	tests := []struct {
		name   string
		start  string
		end    string
		within bool
	}{
		{"fully inside the week", "2025-12-22", "2025-12-24", true},
		{"starts before and ends inside", "2025-12-10", "2025-12-21", true},
		{"starts inside and ends after", "2025-12-27", "2026-01-05", true},
		{"spans the whole week", "2025-12-01", "2026-01-10", true},
		{"ends the day before the week", "2025-12-10", "2025-12-20", false},
		{"starts the day after the week", "2025-12-28", "2026-01-02", false},
		{"unparseable start never overlaps", "someday", "2025-12-24", false},
		{"unparseable end never overlaps", "2025-12-22", "someday", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Period{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.within, Overlaps(p, weekStart, weekEnd))
		})
	}
}
