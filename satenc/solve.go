package satenc

import (
	"context"
	"time"

	"github.com/flowcore/numberlink/board"
)

// solveResult carries a Backend's outcome across the goroutine boundary.
type solveResult struct {
	grid      board.Board
	nodeCount int64
	err       error
}

// Solve encodes b and runs DefaultBackend against it on a separate
// goroutine bound to deadline, the same asynchronous-invocation shape a
// binding to an out-of-process solver would need. When the deadline
// passes first, Solve still waits for the backend to observe the
// cancelled context and return before it reports ErrTimeout, so a
// backend that ignores cancellation holds the caller until it finishes.
func Solve(b board.Board, deadline time.Time) (board.Board, int64, error) {
	return SolveWithBackend(DefaultBackend{}, b, deadline)
}

// SolveWithBackend is Solve parameterized over the Backend, exported so
// a future external-solver binding can be exercised through the same
// deadline and cancellation plumbing.
func SolveWithBackend(backend Backend, b board.Board, deadline time.Time) (board.Board, int64, error) {
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	defer cancel()

	m := Encode(b)
	done := make(chan solveResult, 1)
	var nodeCount int64

	go func() {
		grid, err := backend.Solve(ctx, m, DefaultOptions(), &nodeCount)
		done <- solveResult{grid: grid, err: err}
	}()

	select {
	case res := <-done:
		return res.grid, nodeCount, res.err
	case <-ctx.Done():
		<-done // let the worker observe cancellation and exit before returning
		return nil, nodeCount, ErrTimeout
	}
}
