package ports

import (
	"context"

	"github.com/grammophone/domos/pkg/domain"
)

// AccessChecker decides whether an identity may execute a state path
// against a stateful object. It is consulted only while no elevated-access
// scope is open on the session.
type AccessChecker interface {
	// Check returns true when access is granted. A non-nil error signals a
	// checker malfunction, not a denial.
	Check(ctx context.Context, actor domain.Identity, path domain.StatePath, obj domain.StatefulObject) (bool, error)
}

// AccessCheckerFunc adapts a function to the AccessChecker interface.
type AccessCheckerFunc func(ctx context.Context, actor domain.Identity, path domain.StatePath, obj domain.StatefulObject) (bool, error)

func (f AccessCheckerFunc) Check(ctx context.Context, actor domain.Identity, path domain.StatePath, obj domain.StatefulObject) (bool, error) {
	return f(ctx, actor, path, obj)
}

// AllowAll grants every access check. Useful for tests and trusted hosts.
func AllowAll() AccessChecker {
	return AccessCheckerFunc(func(context.Context, domain.Identity, domain.StatePath, domain.StatefulObject) (bool, error) {
		return true, nil
	})
}

// ObjectSource resolves a stateful object by its identifier. Used by
// transport adapters that receive object IDs over the wire; returns
// domain.ErrObjectNotFound for unknown IDs.
type ObjectSource interface {
	Object(ctx context.Context, objectID string) (domain.StatefulObject, error)
}
