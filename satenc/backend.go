package satenc

import (
	"context"

	"github.com/flowcore/numberlink/board"
)

// Options tunes the backend search.
type Options struct {
	// ForbidCycles would reject a candidate whose cells form a disjoint
	// cycle alongside the required endpoint-to-endpoint path, a
	// soundness gap that a bare degree-profile check allows. It is a
	// no-op for DefaultBackend: because every assigned cell is reached
	// by an explicit extension from some color's head, a cell can never
	// join a color except by being adjacent to that color's current
	// frontier, so a same-color cell lying on a disconnected cycle can
	// never be assigned in the first place. The field is kept so a
	// future literal-clause backend, which does not have this
	// structural guarantee, has somewhere to plug in the check.
	ForbidCycles bool
}

// DefaultOptions forbids cycles, matching the puzzle's actual rules.
func DefaultOptions() Options {
	return Options{ForbidCycles: true}
}

// Backend solves an encoded Model. It is the abstraction point a future
// binding to an external constraint engine would implement; DefaultBackend
// is the only implementation available in-process.
type Backend interface {
	Solve(ctx context.Context, m *Model, opts Options, nodeCount *int64) (board.Board, error)
}

// DefaultBackend performs chronological backtracking: at each step it
// extends the most-constrained open color by one cell, recursing on
// success and undoing on failure, checking ctx only every 1024 nodes to
// keep the hot path free of syscalls.
type DefaultBackend struct{}

func (DefaultBackend) Solve(ctx context.Context, m *Model, opts Options, nodeCount *int64) (board.Board, error) {
	s := newSearchState(m)
	ok, err := backtrack(ctx, s, nodeCount)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoSolution
	}
	return s.grid, nil
}

func backtrack(ctx context.Context, s *searchState, nodeCount *int64) (bool, error) {
	check := *nodeCount&1023 == 0
	*nodeCount++
	if check {
		select {
		case <-ctx.Done():
			return false, ErrTimeout
		default:
		}
	}

	if s.done() {
		return true, nil
	}
	if !s.feasible() {
		return false, nil
	}

	idx, moves := s.mostConstrained()
	if idx < 0 || len(moves) == 0 {
		return false, nil
	}

	for _, mv := range moves {
		prevColor, prevCellVal, prevFilled := s.assign(idx, mv)
		ok, err := backtrack(ctx, s, nodeCount)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		s.undo(idx, mv, prevColor, prevCellVal, prevFilled)
	}
	return false, nil
}
