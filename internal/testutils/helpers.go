// Package testutils provides shared fakes for engine and adapter tests.
package testutils

import (
	"context"

	"github.com/grammophone/domos/pkg/domain"
	"github.com/grammophone/domos/pkg/ports"
	"github.com/grammophone/domos/pkg/schema"
	"github.com/grammophone/domos/pkg/workflow"
)

// Object is a minimal stateful object for tests.
type Object struct {
	ID      string
	State   string
	Applied []*domain.StateTransition
}

// NewObject creates a test object in the given state.
func NewObject(id, state string) *Object {
	return &Object{ID: id, State: state}
}

func (o *Object) ObjectID() string {
	return o.ID
}

func (o *Object) CurrentState() string {
	return o.State
}

func (o *Object) ApplyTransition(tr *domain.StateTransition) {
	o.Applied = append(o.Applied, tr)
	o.State = tr.ToState
}

// RecordingAction returns an action that appends name to log when executed
// and declares the given parameters.
func RecordingAction(name string, log *[]string, params ...*schema.Parameter) workflow.Action {
	return workflow.NewAction(params, func(ctx context.Context, inv *workflow.Invocation) error {
		*log = append(*log, name)
		return nil
	})
}

// FailingAction returns an action that always fails with err after
// appending name to log.
func FailingAction(name string, log *[]string, err error, params ...*schema.Parameter) workflow.Action {
	return workflow.NewAction(params, func(ctx context.Context, inv *workflow.Invocation) error {
		*log = append(*log, name)
		return err
	})
}

// DenyAll refuses every access check.
func DenyAll() ports.AccessChecker {
	return ports.AccessCheckerFunc(func(context.Context, domain.Identity, domain.StatePath, domain.StatefulObject) (bool, error) {
		return false, nil
	})
}

// ObjectMap implements ports.ObjectSource over a fixed set of objects.
type ObjectMap map[string]domain.StatefulObject

func (m ObjectMap) Object(_ context.Context, objectID string) (domain.StatefulObject, error) {
	obj, ok := m[objectID]
	if !ok {
		return nil, domain.ErrObjectNotFound
	}
	return obj, nil
}
