package middleware

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/grammophone/domos/pkg/domain"
	"github.com/grammophone/domos/pkg/ports"
)

// Instrument returns a middleware counting store operations and failures.
func Instrument(reg prometheus.Registerer) Middleware {
	ops := promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Namespace: "domos",
		Name:      "store_operations_total",
		Help:      "Transition store operations by kind and outcome.",
	}, []string{"op", "result"})

	return func(next ports.TransitionStore) ports.TransitionStore {
		return &instrumentedStore{next: next, ops: ops}
	}
}

type instrumentedStore struct {
	next ports.TransitionStore
	ops  *prometheus.CounterVec
}

func (s *instrumentedStore) observe(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.ops.WithLabelValues(op, result).Inc()
}

func (s *instrumentedStore) Append(ctx context.Context, obj domain.StatefulObject, tr *domain.StateTransition) error {
	err := s.next.Append(ctx, obj, tr)
	s.observe("append", err)
	return err
}

func (s *instrumentedStore) Commit(ctx context.Context) error {
	err := s.next.Commit(ctx)
	s.observe("commit", err)
	return err
}

func (s *instrumentedStore) Discard(ctx context.Context) error {
	err := s.next.Discard(ctx)
	s.observe("discard", err)
	return err
}

func (s *instrumentedStore) History(ctx context.Context, objectID string) ([]*domain.StateTransition, error) {
	history, err := s.next.History(ctx, objectID)
	s.observe("history", err)
	return history, err
}
