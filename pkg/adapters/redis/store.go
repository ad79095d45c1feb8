// Package redis provides a Redis-backed ports.TransitionStore. Transition
// history is kept per object in a Redis list; Commit flushes all staged
// records in a single MULTI/EXEC transaction, giving the atomic
// all-or-nothing persistence the store contract demands.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	backend "github.com/redis/go-redis/v9"

	"github.com/grammophone/domos/pkg/domain"
)

// Store implements ports.TransitionStore on Redis.
type Store struct {
	client *backend.Client
	prefix string

	mu     sync.Mutex
	staged []*domain.StateTransition
}

// NewStore creates a Redis store. The prefix namespaces all keys
// (e.g. "domos:").
func NewStore(client *backend.Client, prefix string) *Store {
	return &Store{
		client: client,
		prefix: prefix,
	}
}

func (s *Store) key(objectID string) string {
	return s.prefix + "transitions:" + objectID
}

// Append stages a transition; it reaches Redis only on Commit.
func (s *Store) Append(ctx context.Context, obj domain.StatefulObject, tr *domain.StateTransition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := *tr
	s.staged = append(s.staged, &staged)
	return nil
}

// Commit writes every staged transition in one Redis transaction.
func (s *Store) Commit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.staged) == 0 {
		return nil
	}

	pipe := s.client.TxPipeline()
	for _, tr := range s.staged {
		payload, err := json.Marshal(tr)
		if err != nil {
			return fmt.Errorf("encoding transition %s: %w", tr.ID, err)
		}
		pipe.RPush(ctx, s.key(tr.ObjectID), payload)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis error committing transitions: %w", err)
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
	raw, err := s.client.LRange(ctx, s.key(objectID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error reading history for %s: %w", objectID, err)
	}

	out := make([]*domain.StateTransition, 0, len(raw))
	for _, item := range raw {
		var tr domain.StateTransition
		if err := json.Unmarshal([]byte(item), &tr); err != nil {
			return nil, fmt.Errorf("decoding transition for %s: %w", objectID, err)
		}
		out = append(out, &tr)
	}
	return out, nil
}
