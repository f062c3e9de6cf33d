package client

import (
	"context"
	"sort"
	"strconv"
)

type StubClientRepo struct {
	nextId  int
	clients map[string]Client
}

func NewStubClientRepo() *StubClientRepo {
	return &StubClientRepo{clients: map[string]Client{}}
}

func (s *StubClientRepo) Reset() {
	s.nextId = 0
	s.clients = map[string]Client{}
}

func (s *StubClientRepo) Store(ctx context.Context, client Client) (string, error) {
	for _, existing := range s.clients {
		if existing.Name == client.Name {
			return "", ErrNameAlreadyUsed
		}
	}
	s.nextId++
	client.Id = "client-" + strconv.Itoa(s.nextId)
	s.clients[client.Id] = client
	return client.Id, nil
}

func (s *StubClientRepo) FindAll(ctx context.Context) ([]Client, error) {
	clients := make([]Client, 0, len(s.clients))
	for _, client := range s.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].Name < clients[j].Name
	})
	return clients, nil
}

func (s *StubClientRepo) FindById(ctx context.Context, id string) (Client, error) {
	if client, exists := s.clients[id]; exists {
		return client, nil
	}
	return Client{}, ErrClientNotFound
}

func (s *StubClientRepo) Update(ctx context.Context, client Client) (bool, error) {
	if _, exists := s.clients[client.Id]; !exists {
		return false, nil
	}
	s.clients[client.Id] = client
	return true, nil
}

func (s *StubClientRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, exists := s.clients[id]; exists {
		delete(s.clients, id)
		return true, nil
	}
	return false, nil
}
