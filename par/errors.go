package par

import "github.com/pkg/errors"

// InvariantError indicates that a caller or subclass hook attempted an
// operation that would violate the mating invariant (equal labels on
// both sides of a mate pairing). It is always a programming error in
// the engine's client code, never a property of the input graphs, so it
// is raised as a panic rather than threaded through error returns: the
// engine has no sane way to keep running once the invariant is broken.
type InvariantError struct {
	msg string
}

func (e *InvariantError) Error() string { return e.msg }

func newInvariantError(format string, args ...any) *InvariantError {
	return &InvariantError{msg: errors.Errorf(format, args...).Error()}
}
