package session

import "github.com/grammophone/domos/pkg/domain"

// ImpersonationScope holds the (overridden, impersonated) identity pair for
// one impersonation. Closing restores exactly the identity that was active
// immediately before the scope was opened, not whatever happens to be
// active at close time; closing while an inner scope is still open is
// reported as ErrOutOfOrderRelease.
type ImpersonationScope struct {
	overridden   domain.Identity
	impersonated domain.Identity
	current      func() domain.Identity
	restore      func(domain.Identity)
	closed       bool
}

// NewImpersonationScope builds a scope from the previously-active identity,
// the impersonation target, and the session's identity-slot delegates.
// Absent identities or delegates are programming errors rejected here.
func NewImpersonationScope(overridden, impersonated domain.Identity, current func() domain.Identity, restore func(domain.Identity)) (*ImpersonationScope, error) {
	if overridden.IsZero() || impersonated.IsZero() {
		return nil, ErrNoIdentity
	}
	if current == nil || restore == nil {
		return nil, ErrNilRelease
	}
	return &ImpersonationScope{
		overridden:   overridden,
		impersonated: impersonated,
		current:      current,
		restore:      restore,
	}, nil
}

// Overridden returns the identity that was active before this scope opened.
func (s *ImpersonationScope) Overridden() domain.Identity {
	return s.overridden
}

// Impersonated returns the identity substituted while the scope is open.
func (s *ImpersonationScope) Impersonated() domain.Identity {
	return s.impersonated
}

// Close restores the overridden identity captured at construction time.
// Idempotent. When the active identity at close time is not the
// impersonated one, the scope was closed out of LIFO order: the overridden
// identity is restored anyway and ErrOutOfOrderRelease is returned.
func (s *ImpersonationScope) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	outOfOrder := s.current().ID != s.impersonated.ID
	s.restore(s.overridden)
	if outOfOrder {
		return ErrOutOfOrderRelease
	}
	return nil
}
