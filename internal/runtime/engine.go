package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/grammophone/domos/internal/logging"
	"github.com/grammophone/domos/pkg/domain"
	"github.com/grammophone/domos/pkg/ports"
	"github.com/grammophone/domos/pkg/schema"
	"github.com/grammophone/domos/pkg/session"
	"github.com/grammophone/domos/pkg/workflow"
)

// Engine orchestrates one state-path transition end-to-end: configuration
// lookup, origin-state check, access check, argument validation, ordered
// pre-actions, the state mutation, and ordered post-actions.
type Engine struct {
	config   *workflow.Config
	resolver workflow.ActionResolver
	store    ports.TransitionStore
	checker  ports.AccessChecker
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithAccessChecker sets the access-check collaborator. Defaults to
// ports.AllowAll.
func WithAccessChecker(checker ports.AccessChecker) EngineOption {
	return func(e *Engine) {
		e.checker = checker
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates an engine over the given path configuration, action
// resolver, and transition store.
func NewEngine(config *workflow.Config, resolver workflow.ActionResolver, store ports.TransitionStore, opts ...EngineOption) *Engine {
	e := &Engine{
		config:   config,
		resolver: resolver,
		store:    store,
		checker:  ports.AllowAll(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// resolvedAction pairs a configured key with its registered implementation.
type resolvedAction struct {
	key    string
	action workflow.Action
}

// ExecutePath executes the named state path against obj with the supplied
// argument bag, attributed to the session's currently acting identity.
//
// On success exactly one StateTransition has been recorded and committed.
// Any failure before the mutation leaves nothing persisted. A post-action
// failure is returned as a *domain.ActionError with Committed set: the
// recorded transition is not rolled back, and writes committed by earlier
// post-actions stand. Only the failing post-action's own staged writes are
// discarded.
func (e *Engine) ExecutePath(ctx context.Context, sess *session.Session, graphName, pathName string, obj domain.StatefulObject, args map[string]any) (*domain.StateTransition, error) {
	if sess == nil {
		return nil, session.ErrNoIdentity
	}
	if obj == nil {
		return nil, fmt.Errorf("stateful object is required")
	}
	if args == nil {
		args = map[string]any{}
	}

	start := time.Now()
	e.emitPathStart(ctx, sess, graphName, pathName, obj)

	tr, err := e.executePath(ctx, sess, graphName, pathName, obj, args)

	e.emitPathEnd(ctx, sess, graphName, pathName, obj, time.Since(start), err)
	return tr, err
}

// History returns the committed transition history of an object, oldest
// first.
func (e *Engine) History(ctx context.Context, objectID string) ([]*domain.StateTransition, error) {
	return e.store.History(ctx, objectID)
}

func (e *Engine) executePath(ctx context.Context, sess *session.Session, graphName, pathName string, obj domain.StatefulObject, args map[string]any) (*domain.StateTransition, error) {
	// 1. Resolve the path and its action configuration.
	path, cfg, err := e.config.Resolve(graphName, pathName)
	if err != nil {
		e.logger.ErrorContext(ctx, "state path not configured", "graph", graphName, "path", pathName, "error", err)
		return nil, err
	}

	// 2. The path must originate from the object's current state.
	if current := obj.CurrentState(); current != path.From {
		return nil, &domain.IntegrityError{
			Graph:     graphName,
			Path:      pathName,
			ObjectID:  obj.ObjectID(),
			WantState: path.From,
			HaveState: current,
		}
	}

	// 3. Access check, skipped entirely while elevated access is open.
	actor := sess.Actor()
	if !sess.Elevated() {
		granted, err := e.checker.Check(ctx, actor, path, obj)
		if err != nil {
			return nil, fmt.Errorf("access check for path %s: %w", path.Key(), err)
		}
		if !granted {
			e.logger.InfoContext(ctx, "access denied", "path", path.Key(), "object", obj.ObjectID(), "actor", actor.ID)
			return nil, &domain.AccessDeniedError{
				Path:     pathName,
				ObjectID: obj.ObjectID(),
				Actor:    actor.String(),
			}
		}
	}

	// 4. Resolve every bound action, then validate the argument bag
	// against the union of their parameter specifications.
	preActions, err := e.resolveActions(graphName, pathName, cfg.PreActions())
	if err != nil {
		return nil, err
	}
	postActions, err := e.resolveActions(graphName, pathName, cfg.PostActions())
	if err != nil {
		return nil, err
	}

	if violations := schema.ValidateArguments(unionParameters(preActions, postActions), args); !violations.IsEmpty() {
		e.logger.DebugContext(ctx, "argument validation failed", "path", path.Key(), "keys", violations.Keys())
		return nil, violations
	}

	inv := &workflow.Invocation{
		Actor:  actor,
		Object: obj,
		Args:   args,
		Store:  e.store,
	}

	// 5. Pre-actions, in configured order. A failure aborts everything:
	// staged writes are discarded, no transition is recorded, no
	// post-action runs.
	if err := e.runPreActions(ctx, preActions, inv, path); err != nil {
		if derr := e.store.Discard(ctx); derr != nil {
			e.logger.ErrorContext(ctx, "discarding staged changes failed", "path", path.Key(), "error", derr)
		}
		return nil, err
	}

	// 6. Record and persist the state mutation.
	tr := domain.NewStateTransition(path, obj, actor)
	if err := e.store.Append(ctx, obj, tr); err != nil {
		if derr := e.store.Discard(ctx); derr != nil {
			e.logger.ErrorContext(ctx, "discarding staged changes failed", "path", path.Key(), "error", derr)
		}
		return nil, fmt.Errorf("appending transition for path %s: %w", path.Key(), err)
	}
	obj.ApplyTransition(tr)
	if err := e.store.Commit(ctx); err != nil {
		if derr := e.store.Discard(ctx); derr != nil {
			e.logger.ErrorContext(ctx, "discarding staged changes failed", "path", path.Key(), "error", derr)
		}
		return nil, fmt.Errorf("committing transition for path %s: %w", path.Key(), err)
	}

	e.emitTransition(ctx, tr)
	e.logger.InfoContext(ctx, "transition recorded",
		"path", path.Key(), "object", obj.ObjectID(), "from", tr.FromState, "to", tr.ToState, "actor", actor.ID)

	// 7. Post-actions, in configured order. The mutation is already
	// committed. Each post-action's staged writes are committed as soon as
	// the action succeeds, so a later failure cannot drop the work of an
	// earlier one; only the failing action's own staged writes are
	// discarded.
	inv.Transition = tr
	for _, ra := range postActions {
		err := ra.action.Execute(ctx, inv)
		e.emitActionExecuted(ctx, path, obj, ra.key, domain.PhasePost, err != nil)
		if err != nil {
			e.logger.ErrorContext(ctx, "action failed",
				"path", path.Key(), "object", obj.ObjectID(), "action", ra.key, "phase", string(domain.PhasePost), "error", err)
			if derr := e.store.Discard(ctx); derr != nil {
				e.logger.ErrorContext(ctx, "discarding staged changes failed", "path", path.Key(), "error", derr)
			}
			return tr, &domain.ActionError{
				Phase:     domain.PhasePost,
				ActionKey: ra.key,
				Committed: true,
				Err:       err,
			}
		}
		e.logger.DebugContext(ctx, "action executed", "path", path.Key(), "action", ra.key, "phase", string(domain.PhasePost))
		if err := e.store.Commit(ctx); err != nil {
			return tr, fmt.Errorf("committing post-action changes for path %s: %w", path.Key(), err)
		}
	}

	return tr, nil
}

// resolveActions maps configured keys to registered implementations,
// preserving order. A missing registration is a fatal configuration error.
func (e *Engine) resolveActions(graphName, pathName string, keys []string) ([]resolvedAction, error) {
	resolved := make([]resolvedAction, 0, len(keys))
	for _, key := range keys {
		action, err := e.resolver.Resolve(key)
		if err != nil {
			return nil, &domain.ConfigError{
				Graph:     graphName,
				Path:      pathName,
				ActionKey: key,
				Reason:    "action is not registered",
			}
		}
		resolved = append(resolved, resolvedAction{key: key, action: action})
	}
	return resolved, nil
}

// unionParameters collects the parameter specifications of every bound
// action. When two actions declare the same key, the first declaration
// wins; the argument value is shared anyway.
func unionParameters(phases ...[]resolvedAction) []*schema.Parameter {
	var params []*schema.Parameter
	seen := make(map[string]bool)
	for _, actions := range phases {
		for _, ra := range actions {
			for _, p := range ra.action.Parameters() {
				if seen[p.Key()] {
					continue
				}
				seen[p.Key()] = true
				params = append(params, p)
			}
		}
	}
	return params
}

// runPreActions executes the pre phase strictly in configured order. The
// first failure aborts the remainder and is wrapped as a
// *domain.ActionError with Committed false: nothing has been persisted
// yet. The post phase runs inline in executePath, which commits between
// actions.
func (e *Engine) runPreActions(ctx context.Context, actions []resolvedAction, inv *workflow.Invocation, path domain.StatePath) error {
	for _, ra := range actions {
		err := ra.action.Execute(ctx, inv)
		e.emitActionExecuted(ctx, path, inv.Object, ra.key, domain.PhasePre, err != nil)
		if err != nil {
			e.logger.ErrorContext(ctx, "action failed",
				"path", path.Key(), "object", inv.Object.ObjectID(), "action", ra.key, "phase", string(domain.PhasePre), "error", err)
			return &domain.ActionError{
				Phase:     domain.PhasePre,
				ActionKey: ra.key,
				Err:       err,
			}
		}
		e.logger.DebugContext(ctx, "action executed", "path", path.Key(), "action", ra.key, "phase", string(domain.PhasePre))
	}
	return nil
}

func (e *Engine) emitPathStart(ctx context.Context, sess *session.Session, graphName, pathName string, obj domain.StatefulObject) {
	if e.hooks.OnPathStart == nil {
		return
	}
	e.hooks.OnPathStart(ctx, &domain.PathEvent{
		EventBase: eventBase(domain.EventPathStart, graphName, pathName, obj.ObjectID()),
		Actor:     sess.Actor().ID,
	})
}

func (e *Engine) emitPathEnd(ctx context.Context, sess *session.Session, graphName, pathName string, obj domain.StatefulObject, elapsed time.Duration, err error) {
	if e.hooks.OnPathEnd == nil {
		return
	}
	e.hooks.OnPathEnd(ctx, &domain.PathEvent{
		EventBase: eventBase(domain.EventPathEnd, graphName, pathName, obj.ObjectID()),
		Actor:     sess.Actor().ID,
		Duration:  elapsed,
		Err:       err,
	})
}

func (e *Engine) emitActionExecuted(ctx context.Context, path domain.StatePath, obj domain.StatefulObject, key string, phase domain.Phase, isError bool) {
	if e.hooks.OnActionExecuted == nil {
		return
	}
	e.hooks.OnActionExecuted(ctx, &domain.ActionEvent{
		EventBase: eventBase(domain.EventActionExecuted, path.GraphName, path.Name, obj.ObjectID()),
		ActionKey: key,
		Phase:     phase,
		IsError:   isError,
	})
}

func (e *Engine) emitTransition(ctx context.Context, tr *domain.StateTransition) {
	if e.hooks.OnTransition == nil {
		return
	}
	e.hooks.OnTransition(ctx, &domain.TransitionEvent{
		EventBase:    eventBase(domain.EventTransition, tr.GraphName, tr.PathName, tr.ObjectID),
		TransitionID: tr.ID,
		FromState:    tr.FromState,
		ToState:      tr.ToState,
		Actor:        tr.ActorID,
	})
}

func eventBase(t domain.EventType, graph, path, objectID string) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now().UTC(),
		Type:      t,
		GraphName: graph,
		PathName:  path,
		ObjectID:  objectID,
	}
}
