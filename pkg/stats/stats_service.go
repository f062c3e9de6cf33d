package stats

import (
	"context"

	"github.com/airwave/airwave/internal/utils"
	"github.com/airwave/airwave/pkg/client"
	"github.com/airwave/airwave/pkg/period"
)

type ClientLister interface {
	List(ctx context.Context) ([]client.ClientOverview, error)
}

type PeriodLister interface {
	List(ctx context.Context) ([]period.Period, error)
}

type Service interface {
	Summary(ctx context.Context) (Summary, error)
}

type ServiceImpl struct {
	clients ClientLister
	periods PeriodLister
	clock   utils.Clock
}

func NewService(clients ClientLister, periods PeriodLister, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{clients: clients, periods: periods, clock: clock}
}

func (s *ServiceImpl) Summary(ctx context.Context) (Summary, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	periods, err := s.periods.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	now := s.clock.Now()
	weekStart := period.StartOfWeek(now)
	weekEnd := period.EndOfWeek(now)

	summary := Summary{TotalClients: len(clients)}
	for _, p := range periods {
		switch period.EffectiveStatus(p, now) {
		case period.StatusScheduled:
			summary.ScheduledPeriods++
		case period.StatusActive:
			summary.ActivePeriods++
		case period.StatusCompleted:
			summary.CompletedPeriods++
		}

		if !p.CreatedAt.Before(weekStart) && !p.CreatedAt.After(weekEnd) {
			summary.CreatedThisWeek++
			summary.CreatedByWeekday[int(p.CreatedAt.Weekday())]++
		}
	}

	withAirtime := 0
	for _, c := range clients {
		if c.ActivePeriods > 0 {
			withAirtime++
		}
	}
	if len(clients) > 0 {
		summary.ClientsWithAirtime = withAirtime * 100 / len(clients)
	}
	return summary, nil
}
