package weekly

import (
	"context"
	"testing"
	"time"

	"github.com/airwave/airwave/internal/utils"
	"github.com/airwave/airwave/pkg/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPeriodSource struct {
	periods map[string]period.Period
}

func newStubPeriodSource(periods ...period.Period) *stubPeriodSource {
	byId := make(map[string]period.Period, len(periods))
	for _, p := range periods {
		byId[p.Id] = p
	}
	return &stubPeriodSource{periods: byId}
}

func (s *stubPeriodSource) List(ctx context.Context) ([]period.Period, error) {
	all := make([]period.Period, 0, len(s.periods))
	for _, p := range s.periods {
		all = append(all, p)
	}
	return all, nil
}

func (s *stubPeriodSource) Get(ctx context.Context, id string) (period.Period, error) {
	if p, exists := s.periods[id]; exists {
		return p, nil
	}
	return period.Period{}, period.ErrPeriodNotFound
}

func (s *stubPeriodSource) SetExpirationHandled(ctx context.Context, id string, handled bool) (bool, error) {
	p, exists := s.periods[id]
	if !exists {
		return false, nil
	}
	p.ExpirationHandled = handled
	s.periods[id] = p
	return true, nil
}

// Tuesday of the 2025-12-21 to 2025-12-27 week.
var weeklyTestNow = time.Date(2025, 12, 23, 12, 0, 0, 0, time.Local)

func TestExpiringThisWeek(t *testing.T) {
	source := newStubPeriodSource(
		period.Period{Id: "p1", ClientName: "Beira Rio", EndDate: "2025-12-26", StartDate: "2025-12-01"},
		period.Period{Id: "p2", ClientName: "Acme Mall", EndDate: "2025-12-26", StartDate: "2025-12-01"},
		period.Period{Id: "p3", ClientName: "Center Norte", EndDate: "2025-12-22", StartDate: "2025-12-01"},
		period.Period{Id: "p4", ClientName: "Handled", EndDate: "2025-12-24", StartDate: "2025-12-01", ExpirationHandled: true},
		period.Period{Id: "p5", ClientName: "Next Week", EndDate: "2025-12-29", StartDate: "2025-12-01"},
		period.Period{Id: "p6", ClientName: "Legacy", EndDate: "someday", StartDate: "2025-12-01"},
	)
	service := NewService(source, &utils.MockClock{FixedNow: weeklyTestNow})

	expiring, err := service.ExpiringThisWeek(context.Background())

	require.NoError(t, err)
	require.Len(t, expiring, 3)
	assert.Equal(t, "p3", expiring[0].Id, "earliest end date first")
	assert.Equal(t, "p2", expiring[1].Id, "client name breaks end-date ties")
	assert.Equal(t, "p1", expiring[2].Id)
}

func TestBroadcastingThisWeek(t *testing.T) {
	source := newStubPeriodSource(
		period.Period{Id: "inside", StartDate: "2025-12-22", EndDate: "2025-12-24"},
		period.Period{Id: "spanning", StartDate: "2025-12-01", EndDate: "2026-01-10"},
		period.Period{Id: "elapsed", StartDate: "2025-11-01", EndDate: "2025-11-07"},
		period.Period{Id: "upcoming", StartDate: "2026-01-05", EndDate: "2026-01-11"},
		period.Period{Id: "ends-sunday", StartDate: "2025-12-10", EndDate: "2025-12-21"},
	)
	service := NewService(source, &utils.MockClock{FixedNow: weeklyTestNow})

	broadcasting, err := service.BroadcastingThisWeek(context.Background())

	require.NoError(t, err)
	require.Len(t, broadcasting, 3)
	assert.Equal(t, "spanning", broadcasting[0].Id)
	assert.Equal(t, "ends-sunday", broadcasting[1].Id)
	assert.Equal(t, "inside", broadcasting[2].Id)
}

func TestToggleExpirationHandled(t *testing.T) {
	source := newStubPeriodSource(
		period.Period{Id: "p1", ClientName: "Acme Mall", EndDate: "2025-12-26", StartDate: "2025-12-01"},
	)
	service := NewService(source, &utils.MockClock{FixedNow: weeklyTestNow})
	ctx := context.Background()

	t.Run("flips the flag on and persists it", func(t *testing.T) {
		updated, err := service.ToggleExpirationHandled(ctx, "p1")

		require.NoError(t, err)
		assert.True(t, updated.ExpirationHandled)

		stored, err := source.Get(ctx, "p1")
		require.NoError(t, err)
		assert.True(t, stored.ExpirationHandled)
	})

	t.Run("a second toggle flips it back", func(t *testing.T) {
		updated, err := service.ToggleExpirationHandled(ctx, "p1")

		require.NoError(t, err)
		assert.False(t, updated.ExpirationHandled)
	})

	t.Run("unknown period", func(t *testing.T) {
		_, err := service.ToggleExpirationHandled(ctx, "p404")

		assert.ErrorIs(t, err, ErrPeriodNotFound)
	})

	t.Run("handled period leaves the expiring view", func(t *testing.T) {
		_, err := service.ToggleExpirationHandled(ctx, "p1")
		require.NoError(t, err)

		expiring, err := service.ExpiringThisWeek(ctx)
		require.NoError(t, err)
		assert.Empty(t, expiring)
	})
}
