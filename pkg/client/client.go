package client

import (
	"time"
)

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

// Client is a venue that receives curated playlists. Name doubles as the
// display key: legacy broadcast periods reference their client by name, so it
// must stay unique.
type Client struct {
	Id         string
	Name       string
	MusicStyle string
	Status     ClientStatus
	CreatedAt  time.Time
}

// ClientOverview is a Client together with the number of periods that are
// currently scheduled or on air for it.
type ClientOverview struct {
	Client
	ActivePeriods int
}
