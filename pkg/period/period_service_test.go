package period

import (
	"context"
	"testing"
	"time"

	"github.com/airwave/airwave/internal/utils"
	"github.com/airwave/airwave/pkg/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClientReader struct {
	clients map[string]client.Client
}

func (s *stubClientReader) FindById(ctx context.Context, id string) (client.Client, error) {
	if c, exists := s.clients[id]; exists {
		return c, nil
	}
	return client.Client{}, client.ErrClientNotFound
}

var periodTestNow = time.Date(2025, 12, 23, 12, 0, 0, 0, time.Local)

func newPeriodService(repo *StubPeriodRepo) *ServiceImpl {
	clients := &stubClientReader{clients: map[string]client.Client{
		"client-1": {Id: "client-1", Name: "Acme Mall", MusicStyle: "Pop"},
		"client-2": {Id: "client-2", Name: "Beira Rio", MusicStyle: "MPB"},
	}}
	return NewService(repo, clients, &utils.MockClock{FixedNow: periodTestNow})
}

func validPeriod() Period {
	return Period{
		ClientId:      "client-1",
		Label:         "Summer campaign",
		StartDate:     "2025-12-20",
		EndDate:       "2025-12-26",
		PlaylistTypes: []string{"ambient"},
		BroadcastMode: BroadcastMixed,
	}
}

func TestServiceCreate(t *testing.T) {
	repo := NewStubPeriodRepo()
	service := newPeriodService(repo)
	ctx := context.Background()

	t.Run("denormalizes the owning client and stamps defaults", func(t *testing.T) {
		repo.Reset()

		created, err := service.Create(ctx, validPeriod())

		require.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, "Acme Mall", created.ClientName)
		assert.Equal(t, "Pop", created.MusicStyle)
		assert.Equal(t, StatusScheduled, created.NominalStatus)
		assert.False(t, created.ExpirationHandled)
		assert.Equal(t, periodTestNow, created.CreatedAt)
	})

	t.Run("keeps an explicit draft status", func(t *testing.T) {
		repo.Reset()
		period := validPeriod()
		period.NominalStatus = StatusDraft

		created, err := service.Create(ctx, period)

		require.NoError(t, err)
		assert.Equal(t, StatusDraft, created.NominalStatus)
	})

	t.Run("rejects an unknown client", func(t *testing.T) {
		repo.Reset()
		period := validPeriod()
		period.ClientId = "client-404"

		_, err := service.Create(ctx, period)

		assert.ErrorIs(t, err, ErrUnknownClient)
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		repo.Reset()
		period := validPeriod()
		period.StartDate = "2025-12-26"
		period.EndDate = "2025-12-20"

		_, err := service.Create(ctx, period)

		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("rejects an unparseable date", func(t *testing.T) {
		repo.Reset()
		period := validPeriod()
		period.EndDate = "someday"

		_, err := service.Create(ctx, period)

		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("rejects empty playlist types", func(t *testing.T) {
		repo.Reset()
		period := validPeriod()
		period.PlaylistTypes = nil

		_, err := service.Create(ctx, period)

		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("rejects an unknown broadcast mode", func(t *testing.T) {
		repo.Reset()
		period := validPeriod()
		period.BroadcastMode = "shuffle"

		_, err := service.Create(ctx, period)

		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})
}

func TestServiceList_OrdersByStartDateDescending(t *testing.T) {
	repo := NewStubPeriodRepo()
	service := newPeriodService(repo)
	ctx := context.Background()

	older := validPeriod()
	older.StartDate = "2025-11-01"
	older.EndDate = "2025-11-07"
	newer := validPeriod()
	newer.StartDate = "2025-12-20"
	legacy := validPeriod()

	_, err := service.Create(ctx, newer)
	require.NoError(t, err)
	_, err = service.Create(ctx, older)
	require.NoError(t, err)
	created, err := service.Create(ctx, legacy)
	require.NoError(t, err)

	// legacy rows may carry dates no longer parseable; they sort last
	created.StartDate = "someday"
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	require.True(t, updated)

	periods, err := service.List(ctx)

	require.NoError(t, err)
	require.Len(t, periods, 3)
	assert.Equal(t, "2025-12-20", periods[0].StartDate)
	assert.Equal(t, "2025-11-01", periods[1].StartDate)
	assert.Equal(t, "someday", periods[2].StartDate)
}

func TestServiceCountActiveByClientName(t *testing.T) {
	repo := NewStubPeriodRepo()
	service := newPeriodService(repo)
	ctx := context.Background()

	onAir := validPeriod() // 2025-12-20..26, active at test time
	upcoming := validPeriod()
	upcoming.StartDate = "2026-01-05"
	upcoming.EndDate = "2026-01-11"
	elapsed := validPeriod()
	elapsed.ClientId = "client-2"
	elapsed.StartDate = "2025-11-01"
	elapsed.EndDate = "2025-11-07"

	for _, p := range []Period{onAir, upcoming, elapsed} {
		_, err := service.Create(ctx, p)
		require.NoError(t, err)
	}

	counts, err := service.CountActiveByClientName(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, counts["Acme Mall"])
	assert.NotContains(t, counts, "Beira Rio", "completed periods do not count")
}
