package period

import (
	"time"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Label returns the display text used in lists and report exports.
func (s Status) Label() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusScheduled:
		return "Scheduled"
	case StatusActive:
		return "On Air"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

type BroadcastMode string

const (
	// BroadcastMixed interleaves the client's base repertoire with seasonal tracks.
	BroadcastMixed BroadcastMode = "mixed"
	// BroadcastFullSeasonal plays seasonal tracks only.
	BroadcastFullSeasonal BroadcastMode = "full-seasonal"
)

func IsKnownStatus(status Status) bool {
	switch status {
	case StatusDraft, StatusScheduled, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func IsKnownBroadcastMode(mode BroadcastMode) bool {
	return mode == BroadcastMixed || mode == BroadcastFullSeasonal
}

// Period is a single broadcast window of a client's seasonal playlist.
//
// StartDate and EndDate are kept in their stored text encoding because legacy
// records mix several formats; ParseDate normalizes them on read. EndDate is
// inclusive through the last instant of that day.
//
// NominalStatus is the last status explicitly persisted by a user action.
// Derivation code only reads it; the projected value comes from
// EffectiveStatus and is never written back.
type Period struct {
	Id         string
	ClientId   string
	ClientName string // display cache, not authoritative identity
	Label      string
	MusicStyle string
	StartDate  string
	EndDate    string

	PlaylistTypes []string
	BroadcastMode BroadcastMode
	NominalStatus Status

	// ExpirationHandled tracks whether an operator followed up on this
	// period's expiration. Independent from NominalStatus.
	ExpirationHandled bool

	CreatedAt time.Time
}
