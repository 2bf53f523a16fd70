package query

import (
	"time"

	"github.com/innovatehub/collab/internal/client/models"
)

// Status is the settled outcome of a kind's most recent fetch.
type Status int

const (
	// StatusAbsent means no fetch of the kind has settled yet.
	StatusAbsent Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "absent"
	}
}

// State is an immutable snapshot of one kind's cache entry. Every
// transition replaces the snapshot; Records must be treated as read-only.
type State struct {
	Kind   models.Kind
	Status Status
	// Fetching is true while a Select for the kind is in flight. During a
	// background revalidation the previous Records and Err stay visible.
	Fetching  bool
	Records   []models.Record
	Err       error
	UpdatedAt time.Time
}

// Loading reports a fetch in flight with no settled value to show.
func (s *State) Loading() bool {
	return s.Fetching && s.Status == StatusAbsent
}

// Settled reports whether Fetch can answer from this state without waiting.
func (s *State) Settled() bool {
	return !s.Fetching && s.Status != StatusAbsent
}

func (s *State) with(fn func(*State)) *State {
	next := *s
	fn(&next)
	return &next
}
