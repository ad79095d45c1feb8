package domain

import (
	"errors"
	"fmt"
)

// ErrObjectNotFound is returned by object sources when an entity ID cannot
// be resolved.
var ErrObjectNotFound = errors.New("stateful object not found")

// Phase marks whether an action ran before or after the state mutation.
type Phase string

const (
	PhasePre  Phase = "pre"
	PhasePost Phase = "post"
)

// ConfigError signals a fatal configuration problem: a state path with no
// configuration, or a configured action key with no registered
// implementation. It is not a user-facing denial and is never retried.
type ConfigError struct {
	Graph     string
	Path      string
	ActionKey string
	Reason    string
}

func (e *ConfigError) Error() string {
	if e.ActionKey != "" {
		return fmt.Sprintf("configuration error on %s/%s: action %q: %s", e.Graph, e.Path, e.ActionKey, e.Reason)
	}
	return fmt.Sprintf("configuration error on %s/%s: %s", e.Graph, e.Path, e.Reason)
}

// AccessDeniedError signals that the acting identity is not allowed to
// execute the named path against the object. Recoverable by the caller;
// the engine never retries it.
type AccessDeniedError struct {
	Path     string
	ObjectID string
	Actor    string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access denied: path %q on object %q for %s", e.Path, e.ObjectID, e.Actor)
}

// IntegrityError signals that the requested path does not originate from
// the object's current state.
type IntegrityError struct {
	Graph     string
	Path      string
	ObjectID  string
	WantState string
	HaveState string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("path %s/%s requires state %q but object %q is in state %q",
		e.Graph, e.Path, e.WantState, e.ObjectID, e.HaveState)
}

// ActionError wraps a failure raised by a pre- or post-action.
//
// Committed reports whether the state mutation had already been persisted
// when the action failed. Pre-action failures abort the transition with
// nothing persisted; post-action failures leave the recorded transition in
// place (action implementors that need atomicity with the mutation must be
// written as pre-actions).
type ActionError struct {
	Phase     Phase
	ActionKey string
	Committed bool
	Err       error
}

func (e *ActionError) Error() string {
	if e.Committed {
		return fmt.Sprintf("%s-action %q failed after the transition was recorded: %v", e.Phase, e.ActionKey, e.Err)
	}
	return fmt.Sprintf("%s-action %q failed: %v", e.Phase, e.ActionKey, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
