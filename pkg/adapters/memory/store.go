// Package memory provides an in-memory ports.TransitionStore, primarily
// for tests and small embedded hosts.
package memory

import (
	"context"
	"sync"

	"github.com/grammophone/domos/pkg/domain"
)

// Store implements ports.TransitionStore in memory.
// Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	staged  []*domain.StateTransition
	history map[string][]*domain.StateTransition
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		history: make(map[string][]*domain.StateTransition),
	}
}

// Append stages a transition; nothing is visible until Commit.
func (s *Store) Append(ctx context.Context, obj domain.StatefulObject, tr *domain.StateTransition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy so later caller mutations cannot leak into the store.
	staged := *tr
	s.staged = append(s.staged, &staged)
	return nil
}

// Commit moves every staged transition into the committed history as one
// unit.
func (s *Store) Commit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tr := range s.staged {
		s.history[tr.ObjectID] = append(s.history[tr.ObjectID], tr)
	}
	s.staged = nil
	return nil
}

// Discard drops all staged, uncommitted transitions.
func (s *Store) Discard(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.staged = nil
	return nil
}

// History returns the committed transitions for objectID, oldest first.
func (s *Store) History(ctx context.Context, objectID string) ([]*domain.StateTransition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	committed := s.history[objectID]
	out := make([]*domain.StateTransition, len(committed))
	for i, tr := range committed {
		copied := *tr
		out[i] = &copied
	}
	return out, nil
}

// StagedCount reports how many transitions are staged but not committed.
// Useful for asserting the all-or-nothing contract in tests.
func (s *Store) StagedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.staged)
}
