package period

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/airwave/airwave/internal/utils"
	"github.com/airwave/airwave/pkg/client"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidPeriod = errors.New("invalid period")
var ErrUnknownClient = errors.New("unknown client")

// ClientReader is the slice of the client feature the period service needs.
// Satisfied by client.ClientRepo.
type ClientReader interface {
	FindById(ctx context.Context, id string) (client.Client, error)
}

type Service interface {
	// List returns all periods ordered by start date, most recent first.
	// Periods with unparseable start dates sort last.
	List(ctx context.Context) ([]Period, error)
	Get(ctx context.Context, id string) (Period, error)
	Create(ctx context.Context, period Period) (Period, error)
	Update(ctx context.Context, period Period) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	// SetExpirationHandled persists the operator follow-up flag. Setting the
	// same value twice is a no-op.
	SetExpirationHandled(ctx context.Context, id string, handled bool) (bool, error)
	// CountActiveByClientName counts, per client name, the periods whose
	// effective status is scheduled or active right now.
	CountActiveByClientName(ctx context.Context) (map[string]int, error)
	DeleteByClient(ctx context.Context, clientId string, clientName string) (int, error)
}

type ServiceImpl struct {
	repo    PeriodRepo
	clients ClientReader
	clock   utils.Clock
}

func NewService(repo PeriodRepo, clients ClientReader, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, clients: clients, clock: clock}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Period, error) {
	periods, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(periods, func(i, j int) bool {
		startI, errI := ParseDate(periods[i].StartDate)
		startJ, errJ := ParseDate(periods[j].StartDate)
		if errI != nil {
			return false
		}
		if errJ != nil {
			return true
		}
		return startI.After(startJ)
	})
	return periods, nil
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (Period, error) {
	return s.repo.FindById(ctx, id)
}

func (s *ServiceImpl) Create(ctx context.Context, period Period) (Period, error) {
	if err := validateWindow(period); err != nil {
		return Period{}, err
	}
	if len(period.PlaylistTypes) == 0 {
		return Period{}, fmt.Errorf("%w: at least one playlist type is required", ErrInvalidPeriod)
	}
	if !IsKnownBroadcastMode(period.BroadcastMode) {
		return Period{}, fmt.Errorf("%w: unknown broadcast mode %q", ErrInvalidPeriod, period.BroadcastMode)
	}

	owner, err := s.clients.FindById(ctx, period.ClientId)
	if err != nil {
		if errors.Is(err, client.ErrClientNotFound) {
			return Period{}, fmt.Errorf("%w: %s", ErrUnknownClient, period.ClientId)
		}
		return Period{}, fmt.Errorf("failed to resolve client %s: %w", period.ClientId, err)
	}
	period.ClientName = owner.Name
	period.MusicStyle = owner.MusicStyle

	if period.NominalStatus == "" {
		period.NominalStatus = StatusScheduled
	}
	period.ExpirationHandled = false
	period.CreatedAt = s.clock.Now()

	id, err := s.repo.Store(ctx, period)
	if err != nil {
		return Period{}, err
	}
	period.Id = id
	return period, nil
}

func (s *ServiceImpl) Update(ctx context.Context, period Period) (bool, error) {
	if err := validateWindow(period); err != nil {
		return false, err
	}
	if len(period.PlaylistTypes) == 0 {
		return false, fmt.Errorf("%w: at least one playlist type is required", ErrInvalidPeriod)
	}

	updated, err := s.repo.Update(ctx, period)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("period not updated, probably because it does not exist (%s)", period.Id)
		return false, nil
	}
	return true, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *ServiceImpl) SetExpirationHandled(ctx context.Context, id string, handled bool) (bool, error) {
	return s.repo.SetExpirationHandled(ctx, id, handled)
}

func (s *ServiceImpl) CountActiveByClientName(ctx context.Context) (map[string]int, error) {
	periods, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	counts := make(map[string]int)
	for _, p := range periods {
		status := EffectiveStatus(p, now)
		if status == StatusScheduled || status == StatusActive {
			counts[p.ClientName]++
		}
	}
	return counts, nil
}

func (s *ServiceImpl) DeleteByClient(ctx context.Context, clientId string, clientName string) (int, error) {
	return s.repo.DeleteByClient(ctx, clientId, clientName)
}

// validateWindow checks that both dates parse and that the window is not
// inverted. Stored legacy rows may carry unparseable dates; new writes may not.
func validateWindow(period Period) error {
	start, err := ParseDate(period.StartDate)
	if err != nil {
		return fmt.Errorf("%w: start date %q: %s", ErrInvalidPeriod, period.StartDate, err)
	}
	end, err := ParseDate(period.EndDate)
	if err != nil {
		return fmt.Errorf("%w: end date %q: %s", ErrInvalidPeriod, period.EndDate, err)
	}
	if start.After(end) {
		return fmt.Errorf("%w: start date is after end date", ErrInvalidPeriod)
	}
	return nil
}
