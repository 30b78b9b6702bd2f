package satenc

import "errors"

// ErrNoSolution is returned when chronological backtracking exhausts
// every assignment without covering the board.
var ErrNoSolution = errors.New("satenc: no solution")

// ErrTimeout is returned when the backend's context is cancelled by its
// deadline before a solution or exhaustion is reached.
var ErrTimeout = errors.New("satenc: timeout")
