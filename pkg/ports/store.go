package ports

import (
	"context"

	"github.com/grammophone/domos/pkg/domain"
)

// TransitionStore defines the persistence contract the engine relies on.
//
// Appends are staged: nothing becomes durable until Commit, which persists
// all pending changes atomically as one unit. Discard drops everything
// staged since the last Commit. The engine never commits a partially
// applied transition; serializing concurrent transitions on the same object
// across sessions is the store's responsibility.
type TransitionStore interface {
	// Append stages a new transition record for obj.
	Append(ctx context.Context, obj domain.StatefulObject, tr *domain.StateTransition) error

	// Commit persists every staged change atomically.
	Commit(ctx context.Context) error

	// Discard drops all staged, uncommitted changes.
	Discard(ctx context.Context) error

	// History returns the committed transitions for an object, oldest
	// first.
	History(ctx context.Context, objectID string) ([]*domain.StateTransition, error)
}
