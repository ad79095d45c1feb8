package observability

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/grammophone/domos/pkg/domain"
	"github.com/grammophone/domos/pkg/schema"
)

// Metrics exposes transition outcomes as Prometheus collectors.
type Metrics struct {
	executions *prometheus.CounterVec
	actions    *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics registers the collectors with reg (use
// prometheus.DefaultRegisterer for the process-wide registry).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		executions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "domos",
			Name:      "path_executions_total",
			Help:      "State-path executions by graph, path, and outcome.",
		}, []string{"graph", "path", "result"}),
		actions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "domos",
			Name:      "action_executions_total",
			Help:      "Pre-/post-action executions by graph, path, phase, and outcome.",
		}, []string{"graph", "path", "phase", "result"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "domos",
			Name:      "path_duration_seconds",
			Help:      "End-to-end duration of ExecutePath calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"graph", "path"}),
	}
}

// Hooks returns lifecycle hooks feeding these collectors. Combine them with
// host hooks via ChainHooks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnActionExecuted: func(_ context.Context, ev *domain.ActionEvent) {
			result := "ok"
			if ev.IsError {
				result = "error"
			}
			m.actions.WithLabelValues(ev.GraphName, ev.PathName, string(ev.Phase), result).Inc()
		},
		OnPathEnd: func(_ context.Context, ev *domain.PathEvent) {
			m.executions.WithLabelValues(ev.GraphName, ev.PathName, resultLabel(ev.Err)).Inc()
			m.duration.WithLabelValues(ev.GraphName, ev.PathName).Observe(ev.Duration.Seconds())
		},
	}
}

// resultLabel maps the error taxonomy onto a bounded label set.
func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}

	var (
		configErr    *domain.ConfigError
		accessErr    *domain.AccessDeniedError
		integrityErr *domain.IntegrityError
		actionErr    *domain.ActionError
	)
	switch {
	case errors.As(err, &configErr):
		return "config_error"
	case errors.As(err, &accessErr):
		return "access_denied"
	case errors.As(err, &integrityErr):
		return "integrity_error"
	case errors.As(err, &actionErr):
		return "action_error"
	}
	if _, ok := schema.AsErrorSet(err); ok {
		return "validation_error"
	}
	return "error"
}

// ChainHooks merges several lifecycle hook sets; every non-nil callback
// runs, in argument order.
func ChainHooks(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPathStart: func(ctx context.Context, ev *domain.PathEvent) {
			for _, h := range hooks {
				if h.OnPathStart != nil {
					h.OnPathStart(ctx, ev)
				}
			}
		},
		OnActionExecuted: func(ctx context.Context, ev *domain.ActionEvent) {
			for _, h := range hooks {
				if h.OnActionExecuted != nil {
					h.OnActionExecuted(ctx, ev)
				}
			}
		},
		OnTransition: func(ctx context.Context, ev *domain.TransitionEvent) {
			for _, h := range hooks {
				if h.OnTransition != nil {
					h.OnTransition(ctx, ev)
				}
			}
		},
		OnPathEnd: func(ctx context.Context, ev *domain.PathEvent) {
			for _, h := range hooks {
				if h.OnPathEnd != nil {
					h.OnPathEnd(ctx, ev)
				}
			}
		},
	}
}
