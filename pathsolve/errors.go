package pathsolve

import "errors"

// ErrNoSolution is returned when every color's path enumeration is
// exhausted without reaching a full covering. Path-enumeration is
// complete, so this is a definitive verdict.
var ErrNoSolution = errors.New("pathsolve: no solution")

// ErrTimeout is returned when the deadline elapses during search.
var ErrTimeout = errors.New("pathsolve: timeout")
