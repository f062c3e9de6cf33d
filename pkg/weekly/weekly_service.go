package weekly

import (
	"context"
	"errors"
	"sort"

	"github.com/airwave/airwave/internal/utils"
	"github.com/airwave/airwave/pkg/period"
)

var ErrPeriodNotFound = errors.New("period not found")

// PeriodSource is the slice of the period feature the weekly views need.
type PeriodSource interface {
	List(ctx context.Context) ([]period.Period, error)
	Get(ctx context.Context, id string) (period.Period, error)
	SetExpirationHandled(ctx context.Context, id string, handled bool) (bool, error)
}

type Service interface {
	// ExpiringThisWeek returns periods ending within the current Sunday to
	// Saturday week whose expiration has not been handled yet, ordered by end
	// date with client name as tie-break.
	ExpiringThisWeek(ctx context.Context) ([]period.Period, error)
	// BroadcastingThisWeek returns periods whose window overlaps the current
	// week, ordered by start date.
	BroadcastingThisWeek(ctx context.Context) ([]period.Period, error)
	// ToggleExpirationHandled flips the follow-up flag of a single period and
	// returns the updated period.
	ToggleExpirationHandled(ctx context.Context, id string) (period.Period, error)
}

type ServiceImpl struct {
	periods PeriodSource
	clock   utils.Clock
}

func NewService(periods PeriodSource, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{periods: periods, clock: clock}
}

func (s *ServiceImpl) ExpiringThisWeek(ctx context.Context) ([]period.Period, error) {
	all, err := s.periods.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	expiring := make([]period.Period, 0)
	for _, p := range all {
		if p.ExpirationHandled {
			continue
		}
		if period.IsWithinCurrentWeek(p.EndDate, now) {
			expiring = append(expiring, p)
		}
	}

	sort.SliceStable(expiring, func(i, j int) bool {
		endI, _ := period.ParseDate(expiring[i].EndDate)
		endJ, _ := period.ParseDate(expiring[j].EndDate)
		if !endI.Equal(endJ) {
			return endI.Before(endJ)
		}
		return expiring[i].ClientName < expiring[j].ClientName
	})
	return expiring, nil
}

func (s *ServiceImpl) BroadcastingThisWeek(ctx context.Context) ([]period.Period, error) {
	all, err := s.periods.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	weekStart := period.StartOfWeek(now)
	weekEnd := period.EndOfWeek(now)
	broadcasting := make([]period.Period, 0)
	for _, p := range all {
		if period.Overlaps(p, weekStart, weekEnd) {
			broadcasting = append(broadcasting, p)
		}
	}

	sort.SliceStable(broadcasting, func(i, j int) bool {
		startI, errI := period.ParseDate(broadcasting[i].StartDate)
		startJ, errJ := period.ParseDate(broadcasting[j].StartDate)
		if errI != nil {
			return false
		}
		if errJ != nil {
			return true
		}
		return startI.Before(startJ)
	})
	return broadcasting, nil
}

func (s *ServiceImpl) ToggleExpirationHandled(ctx context.Context, id string) (period.Period, error) {
	current, err := s.periods.Get(ctx, id)
	if err != nil {
		if errors.Is(err, period.ErrPeriodNotFound) {
			return period.Period{}, ErrPeriodNotFound
		}
		return period.Period{}, err
	}

	updated, err := s.periods.SetExpirationHandled(ctx, id, !current.ExpirationHandled)
	if err != nil {
		return period.Period{}, err
	}
	if !updated {
		return period.Period{}, ErrPeriodNotFound
	}

	current.ExpirationHandled = !current.ExpirationHandled
	return current, nil
}
