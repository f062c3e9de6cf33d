package period

import (
	"context"
	"strconv"
)

type StubPeriodRepo struct {
	nextId  int
	order   []string
	periods map[string]Period
}

func NewStubPeriodRepo() *StubPeriodRepo {
	return &StubPeriodRepo{periods: map[string]Period{}}
}

func (s *StubPeriodRepo) Reset() {
	s.nextId = 0
	s.order = nil
	s.periods = map[string]Period{}
}

func (s *StubPeriodRepo) Store(ctx context.Context, period Period) (string, error) {
	s.nextId++
	period.Id = "period-" + strconv.Itoa(s.nextId)
	s.periods[period.Id] = period
	s.order = append(s.order, period.Id)
	return period.Id, nil
}

func (s *StubPeriodRepo) FindAll(ctx context.Context) ([]Period, error) {
	periods := make([]Period, 0, len(s.periods))
	for _, id := range s.order {
		if period, exists := s.periods[id]; exists {
			periods = append(periods, period)
		}
	}
	return periods, nil
}

func (s *StubPeriodRepo) FindById(ctx context.Context, id string) (Period, error) {
	if period, exists := s.periods[id]; exists {
		return period, nil
	}
	return Period{}, ErrPeriodNotFound
}

func (s *StubPeriodRepo) Update(ctx context.Context, period Period) (bool, error) {
	if _, exists := s.periods[period.Id]; !exists {
		return false, nil
	}
	s.periods[period.Id] = period
	return true, nil
}

func (s *StubPeriodRepo) SetExpirationHandled(ctx context.Context, id string, handled bool) (bool, error) {
	period, exists := s.periods[id]
	if !exists {
		return false, nil
	}
	period.ExpirationHandled = handled
	s.periods[id] = period
	return true, nil
}

func (s *StubPeriodRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, exists := s.periods[id]; exists {
		delete(s.periods, id)
		return true, nil
	}
	return false, nil
}

func (s *StubPeriodRepo) DeleteByClient(ctx context.Context, clientId string, clientName string) (int, error) {
	deleted := 0
	for id, period := range s.periods {
		if period.ClientId == clientId || period.ClientName == clientName {
			delete(s.periods, id)
			deleted++
		}
	}
	return deleted, nil
}
