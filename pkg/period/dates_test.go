package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{
			name:  "ISO calendar form",
			value: "2025-12-20",
			want:  time.Date(2025, 12, 20, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "day-first form",
			value: "20/12/2025",
			want:  time.Date(2025, 12, 20, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "legacy RFC3339 timestamp keeps only the calendar day",
			value: "2025-12-20T15:04:05Z",
			want:  time.Date(2025, 12, 20, 0, 0, 0, 0, time.Local),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"not a date",
		"2025-13-40",
		"31/02/2025",
		"12/20/2025",
	}
	for _, value := range invalid {
		t.Run(value, func(t *testing.T) {
			_, err := ParseDate(value)
			assert.ErrorIs(t, err, ErrUnparseableDate)
		})
	}
}

func TestFormatDate_RoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.Local),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local),
	}
	for _, date := range dates {
		formatted := FormatDate(date)
		parsed, err := ParseDate(formatted)
		require.NoError(t, err, "formatted date %q must parse back", formatted)
		assert.Equal(t, date, parsed)
	}
}

func TestEndOfDay(t *testing.T) {
	date := time.Date(2025, 12, 26, 0, 0, 0, 0, time.Local)
	end := EndOfDay(date)

	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.Equal(t, date.Day(), end.Day())
	assert.True(t, end.Before(date.AddDate(0, 0, 1)))
}
