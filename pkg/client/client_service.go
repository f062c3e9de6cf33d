package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/airwave/airwave/internal/utils"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidClient = errors.New("invalid client")

// PeriodDirectory is the part of the period feature the client service needs:
// active counts for the overview and the cascade on client deletion. Legacy
// period records reference their client by name, so both keys are passed.
type PeriodDirectory interface {
	CountActiveByClientName(ctx context.Context) (map[string]int, error)
	DeleteByClient(ctx context.Context, clientId string, clientName string) (int, error)
}

type Service interface {
	List(ctx context.Context) ([]ClientOverview, error)
	Get(ctx context.Context, id string) (Client, error)
	Create(ctx context.Context, client Client) (Client, error)
	Update(ctx context.Context, client Client) (bool, error)
	// Delete removes the client and all of its broadcast periods.
	Delete(ctx context.Context, id string) (bool, error)
}

type ServiceImpl struct {
	repo    ClientRepo
	periods PeriodDirectory
	clock   utils.Clock
}

func NewService(repo ClientRepo, periods PeriodDirectory, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, periods: periods, clock: clock}
}

func (s *ServiceImpl) List(ctx context.Context) ([]ClientOverview, error) {
	clients, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	activeCounts, err := s.periods.CountActiveByClientName(ctx)
	if err != nil {
		return nil, err
	}

	overviews := make([]ClientOverview, 0, len(clients))
	for _, c := range clients {
		overviews = append(overviews, ClientOverview{
			Client:        c,
			ActivePeriods: activeCounts[c.Name],
		})
	}
	return overviews, nil
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (Client, error) {
	return s.repo.FindById(ctx, id)
}

func (s *ServiceImpl) Create(ctx context.Context, client Client) (Client, error) {
	client.Name = strings.TrimSpace(client.Name)
	client.MusicStyle = strings.TrimSpace(client.MusicStyle)
	if client.Name == "" {
		return Client{}, fmt.Errorf("%w: missing name", ErrInvalidClient)
	}
	if client.MusicStyle == "" {
		return Client{}, fmt.Errorf("%w: missing music style", ErrInvalidClient)
	}
	if client.Status == "" {
		client.Status = ClientStatusActive
	}
	client.CreatedAt = s.clock.Now()

	id, err := s.repo.Store(ctx, client)
	if err != nil {
		return Client{}, err
	}
	client.Id = id
	return client, nil
}

func (s *ServiceImpl) Update(ctx context.Context, client Client) (bool, error) {
	if strings.TrimSpace(client.Name) == "" {
		return false, fmt.Errorf("%w: missing name", ErrInvalidClient)
	}
	updated, err := s.repo.Update(ctx, client)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("client not updated, probably because it does not exist (%s)", client.Id)
		return false, nil
	}
	return true, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	client, err := s.repo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			return false, nil
		}
		return false, err
	}

	removed, err := s.periods.DeleteByClient(ctx, client.Id, client.Name)
	if err != nil {
		return false, fmt.Errorf("failed to delete periods of client %s: %w", client.Id, err)
	}
	log.Debugf("deleted %d periods of client %s", removed, client.Id)

	return s.repo.Delete(ctx, id)
}
