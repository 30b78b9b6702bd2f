package heuristic

import "errors"

// ErrNoSolution is returned when the frontier is exhausted without
// finding a covering. Heuristic-BFS is complete (every pruning rule is a
// sound necessary condition for completability), so this is definitive.
var ErrNoSolution = errors.New("heuristic: no solution")

// ErrTimeout is returned when the deadline elapses during search.
var ErrTimeout = errors.New("heuristic: timeout")
