package domos

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/grammophone/domos/internal/logging"
	"github.com/grammophone/domos/internal/runtime"
	"github.com/grammophone/domos/pkg/adapters/memory"
	"github.com/grammophone/domos/pkg/domain"
	"github.com/grammophone/domos/pkg/observability"
	"github.com/grammophone/domos/pkg/ports"
	"github.com/grammophone/domos/pkg/session"
	"github.com/grammophone/domos/pkg/workflow"
)

// Engine is the high-level entry point of the library. It wraps the
// internal runtime with sensible defaults: an in-memory transition store,
// an allow-all access checker, and a no-op logger.
type Engine struct {
	config   *workflow.Config
	resolver workflow.ActionResolver
	store    ports.TransitionStore
	checker  ports.AccessChecker
	logger   *slog.Logger
	hooks    []domain.LifecycleHooks
	runtime  *runtime.Engine
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore injects the persistence collaborator. Defaults to an in-memory
// store.
func WithStore(store ports.TransitionStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithAccessChecker injects the access-check collaborator. Defaults to
// granting everything; production hosts should always set one.
func WithAccessChecker(checker ports.AccessChecker) Option {
	return func(e *Engine) {
		e.checker = checker
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks; may be given more than
// once, all hook sets fire.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = append(e.hooks, hooks)
	}
}

// WithMetrics registers Prometheus collectors for transition outcomes with
// reg and wires them into the engine's lifecycle.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.hooks = append(e.hooks, observability.NewMetrics(reg).Hooks())
	}
}

// New initializes an Engine over a workflow configuration and an action
// resolver (typically a *registry.Registry).
func New(config *workflow.Config, resolver workflow.ActionResolver, opts ...Option) (*Engine, error) {
	if config == nil {
		return nil, fmt.Errorf("workflow configuration is required")
	}
	if resolver == nil {
		return nil, fmt.Errorf("action resolver is required")
	}

	e := &Engine{
		config:   config,
		resolver: resolver,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.store == nil {
		e.store = memory.NewStore()
	}
	if e.checker == nil {
		e.checker = ports.AllowAll()
	}

	e.runtime = runtime.NewEngine(e.config, e.resolver, e.store,
		runtime.WithAccessChecker(e.checker),
		runtime.WithLogger(e.logger),
		runtime.WithLifecycleHooks(observability.ChainHooks(e.hooks...)),
	)
	return e, nil
}

// NewSession opens a session for owner: owner starts as the acting
// identity, privilege scopes are acquired through the returned session.
func (e *Engine) NewSession(owner domain.Identity) (*session.Session, error) {
	return session.New(owner)
}

// ExecutePath executes the named state path against obj with args,
// attributed to the session's currently acting identity. See
// internal/runtime for the full step-by-step contract.
func (e *Engine) ExecutePath(ctx context.Context, sess *session.Session, graphName, pathName string, obj domain.StatefulObject, args map[string]any) (*domain.StateTransition, error) {
	return e.runtime.ExecutePath(ctx, sess, graphName, pathName, obj, args)
}

// History returns the committed transition history of an object.
func (e *Engine) History(ctx context.Context, objectID string) ([]*domain.StateTransition, error) {
	return e.store.History(ctx, objectID)
}

// Config returns the workflow configuration the engine resolves against.
func (e *Engine) Config() *workflow.Config {
	return e.config
}
