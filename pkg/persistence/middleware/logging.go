package middleware

import (
	"context"
	"log/slog"

	"github.com/grammophone/domos/pkg/domain"
	"github.com/grammophone/domos/pkg/ports"
)

// Logging returns a middleware that logs every store operation at Debug
// level and every failure at Error level.
func Logging(logger *slog.Logger) Middleware {
	return func(next ports.TransitionStore) ports.TransitionStore {
		return &loggingStore{next: next, logger: logger}
	}
}

type loggingStore struct {
	next   ports.TransitionStore
	logger *slog.Logger
}

func (s *loggingStore) Append(ctx context.Context, obj domain.StatefulObject, tr *domain.StateTransition) error {
	err := s.next.Append(ctx, obj, tr)
	if err != nil {
		s.logger.ErrorContext(ctx, "store append failed", "object", obj.ObjectID(), "transition", tr.ID, "error", err)
		return err
	}
	s.logger.DebugContext(ctx, "transition staged", "object", obj.ObjectID(), "transition", tr.ID, "path", tr.PathName)
	return nil
}

func (s *loggingStore) Commit(ctx context.Context) error {
	err := s.next.Commit(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "store commit failed", "error", err)
		return err
	}
	s.logger.DebugContext(ctx, "staged changes committed")
	return nil
}

func (s *loggingStore) Discard(ctx context.Context) error {
	err := s.next.Discard(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "store discard failed", "error", err)
		return err
	}
	s.logger.DebugContext(ctx, "staged changes discarded")
	return nil
}

func (s *loggingStore) History(ctx context.Context, objectID string) ([]*domain.StateTransition, error) {
	history, err := s.next.History(ctx, objectID)
	if err != nil {
		s.logger.ErrorContext(ctx, "store history read failed", "object", objectID, "error", err)
	}
	return history, err
}
