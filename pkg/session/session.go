package session

import (
	"errors"

	"github.com/grammophone/domos/pkg/domain"
)

var (
	// ErrNoIdentity is returned when a scope or session is constructed
	// without a valid identity.
	ErrNoIdentity = errors.New("identity is required")

	// ErrNilRelease is returned when a scope is constructed without a
	// release delegate. This is a programming error, caught at
	// construction rather than at close time.
	ErrNilRelease = errors.New("scope release delegate is required")

	// ErrOutOfOrderRelease is returned by ImpersonationScope.Close when an
	// inner scope is still active at close time. The captured identity is
	// restored regardless, so nesting bugs are detectable without leaving
	// the session in a foreign identity.
	ErrOutOfOrderRelease = errors.New("impersonation scope closed out of order")
)

// Session is the per-call-chain register of the currently acting identity,
// plus the elevation nesting counter. One session serves one logical call
// chain; it is deliberately not safe for concurrent use.
type Session struct {
	owner     domain.Identity
	active    domain.Identity
	elevation int
}

// New creates a session owned and initially acted by owner.
func New(owner domain.Identity) (*Session, error) {
	if owner.IsZero() {
		return nil, ErrNoIdentity
	}
	return &Session{
		owner:  owner,
		active: owner,
	}, nil
}

// Owner returns the identity the session was opened for.
func (s *Session) Owner() domain.Identity {
	return s.owner
}

// Actor returns the currently acting identity: the impersonated identity
// while an impersonation scope is open, otherwise the owner.
func (s *Session) Actor() domain.Identity {
	return s.active
}

// Elevated reports whether at least one elevated-access scope is open.
// While true, every access check on this session is granted
// unconditionally; normal authorization resumes when it returns to false.
func (s *Session) Elevated() bool {
	return s.elevation > 0
}

// EnterElevatedAccess opens a new elevated-access scope. Scopes nest: each
// open scope increments the counter, each Close decrements it exactly once,
// and strict checking resumes only when every scope has been closed.
func (s *Session) EnterElevatedAccess() *ElevatedScope {
	s.elevation++
	scope, err := NewElevatedScope(func() {
		s.elevation--
	})
	if err != nil {
		// Unreachable: the delegate above is never nil.
		panic(err)
	}
	return scope
}

// Impersonate substitutes the acting identity with target until the
// returned scope is closed. The identity active right now is captured as
// the overridden identity and restored on Close. Nested impersonation is
// permitted; scopes must be closed in reverse order of opening.
func (s *Session) Impersonate(target domain.Identity) (*ImpersonationScope, error) {
	scope, err := NewImpersonationScope(s.active, target,
		func() domain.Identity { return s.active },
		func(id domain.Identity) { s.active = id },
	)
	if err != nil {
		return nil, err
	}
	s.active = target
	return scope, nil
}
