package workflow

import (
	"context"

	"github.com/grammophone/domos/pkg/domain"
	"github.com/grammophone/domos/pkg/ports"
	"github.com/grammophone/domos/pkg/schema"
)

// Invocation carries everything an action needs for one execution: the
// identity acting at this moment, the object being transitioned, the
// transition record (nil during the pre phase, where no mutation has
// happened yet), the full argument bag, and the store for staging further
// writes. A pre-action's writes commit atomically with the transition; a
// post-action's commit as soon as the action returns success.
type Invocation struct {
	Actor      domain.Identity
	Object     domain.StatefulObject
	Transition *domain.StateTransition
	Args       map[string]any
	Store      ports.TransitionStore
}

// Action is a polymorphic unit of work executed at a transition point.
// Implementations are registered under a key at bootstrap, must be
// stateless across invocations, and must surface any inability to complete
// as an error rather than a silent partial success.
type Action interface {
	// Parameters returns the fixed specifications of the arguments this
	// action expects. It must be deterministic and side-effect free; the
	// engine calls it once per validation pass.
	Parameters() []*schema.Parameter

	// Execute performs the side effect. Side effects are arbitrary; the
	// engine only requires that failure is observable through the returned
	// error.
	Execute(ctx context.Context, inv *Invocation) error
}

// ActionResolver resolves an Action implementation by its registration key.
// A missing registration for a configured key is a fatal configuration
// error.
type ActionResolver interface {
	Resolve(key string) (Action, error)
}

// funcAction adapts a closure and its parameter list to the Action
// interface, mirroring how hosts register tool functions.
type funcAction struct {
	params []*schema.Parameter
	fn     func(ctx context.Context, inv *Invocation) error
}

// NewAction wraps fn and its parameter specifications as an Action.
func NewAction(params []*schema.Parameter, fn func(ctx context.Context, inv *Invocation) error) Action {
	return &funcAction{params: params, fn: fn}
}

func (a *funcAction) Parameters() []*schema.Parameter {
	return a.params
}

func (a *funcAction) Execute(ctx context.Context, inv *Invocation) error {
	return a.fn(ctx, inv)
}
