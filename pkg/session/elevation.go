package session

// ElevatedScope is the disposable token backing one level of elevated
// access. Closing it decrements the session's nesting counter exactly once;
// closing an already-closed scope is a no-op, never an error, so a double
// Close can neither resume strict checking early nor keep it suspended.
type ElevatedScope struct {
	release func()
	closed  bool
}

// NewElevatedScope builds a scope bound to a decrement delegate. A nil
// delegate is a programming error rejected here.
func NewElevatedScope(release func()) (*ElevatedScope, error) {
	if release == nil {
		return nil, ErrNilRelease
	}
	return &ElevatedScope{release: release}, nil
}

// Close releases the scope. Idempotent.
func (s *ElevatedScope) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.release()
	return nil
}
