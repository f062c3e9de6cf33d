package report

import (
	"testing"
	"time"

	"github.com/airwave/airwave/pkg/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportTestNow = time.Date(2025, 12, 23, 12, 0, 0, 0, time.Local)

func reportPeriods() []period.Period {
	return []period.Period{
		{
			Id:            "p1",
			ClientName:    "Sé Center",
			Label:         "Christmas",
			MusicStyle:    "Pop",
			StartDate:     "2025-12-20",
			EndDate:       "2025-12-26",
			PlaylistTypes: []string{"ambient", "jingles"},
			BroadcastMode: period.BroadcastMixed,
			NominalStatus: period.StatusScheduled,
		},
		{
			Id:            "p2",
			ClientName:    "Acme Mall",
			Label:         "Autumn",
			StartDate:     "2025-11-01",
			EndDate:       "2025-11-07",
			BroadcastMode: period.BroadcastFullSeasonal,
			NominalStatus: period.StatusScheduled,
		},
		{
			Id:            "p3",
			ClientName:    "Savassi",
			Label:         "New year",
			StartDate:     "2026-01-05",
			EndDate:       "2026-01-11",
			BroadcastMode: period.BroadcastMixed,
			NominalStatus: period.StatusScheduled,
		},
	}
}

func TestBuildReport_FiltersByEffectiveStatus(t *testing.T) {
	rows := BuildReport(reportPeriods(), reportTestNow, Options{
		Statuses: []period.Status{period.StatusCompleted},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "Acme Mall", rows[0].ClientName)
	assert.Equal(t, "Completed", rows[0].Status)
}

func TestBuildReport_SortsByClientWithLocaleOrdering(t *testing.T) {
	rows := BuildReport(reportPeriods(), reportTestNow, Options{SortBy: SortByClient})

	require.Len(t, rows, 3)
	assert.Equal(t, "Acme Mall", rows[0].ClientName)
	assert.Equal(t, "Savassi", rows[1].ClientName)
	// byte ordering would put the accented name after "Savassi"... after "z" even
	assert.Equal(t, "Sé Center", rows[2].ClientName)
}

func TestBuildReport_SortsByStartDateDescending(t *testing.T) {
	rows := BuildReport(reportPeriods(), reportTestNow, Options{SortBy: SortByStartDate})

	require.Len(t, rows, 3)
	assert.Equal(t, "Savassi", rows[0].ClientName)
	assert.Equal(t, "Sé Center", rows[1].ClientName)
	assert.Equal(t, "Acme Mall", rows[2].ClientName)
}

func TestBuildReport_NumbersRowsAfterSorting(t *testing.T) {
	rows := BuildReport(reportPeriods(), reportTestNow, Options{SortBy: SortByClient})

	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Number)
	}
}

func TestBuildReport_RendersRowFields(t *testing.T) {
	rows := BuildReport(reportPeriods(), reportTestNow, Options{
		Statuses: []period.Status{period.StatusActive},
	})

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "20/12/2025", row.StartDate)
	assert.Equal(t, "26/12/2025", row.EndDate)
	assert.Equal(t, "ambient, jingles", row.PlaylistTypes)
	assert.Equal(t, "mixed", row.BroadcastMode)
	assert.Equal(t, "On Air", row.Status)
}
