// Package heuristic implements a best-first search over partial board
// states, pruning branches that cannot possibly complete per spec.md
// §4.5. Like pathsolve it is complete, but it scales much better on
// boards where colors interact tightly.
package heuristic

import (
	"time"

	"github.com/flowcore/numberlink/board"
	"github.com/flowcore/numberlink/queue"
)

// engine carries search-wide counters so the hot loop never allocates
// and checks the deadline only occasionally, mirroring tsp.bbEngine's
// sparse time.Now() discipline.
type engine struct {
	deadline  time.Time
	steps     int64
	nodeCount int64
	seq       int64
}

// stepStatus is the outcome of advancing one state through forced moves.
type stepStatus int

const (
	stepBranch stepStatus = iota
	stepGoal
	stepDead
	stepTimeout
)

func (e *engine) deadlineHit() bool {
	check := e.steps&1023 == 0
	e.steps++
	return check && time.Now().After(e.deadline)
}

// advance fast-forwards st through any sequence of forced moves (exactly
// one legal move for the most-constrained color) and stops at the first
// state that is a goal, is dead, has timed out, or genuinely branches.
func (e *engine) advance(st *frontierState) (*frontierState, stepStatus) {
	for {
		if e.deadlineHit() {
			return nil, stepTimeout
		}
		if st.allClosed() && st.grid.Filled() {
			return st, stepGoal
		}
		if deadOnArrival(st) {
			return nil, stepDead
		}
		idx, moves := mostConstrained(st)
		if idx < 0 || len(moves) == 0 {
			return nil, stepDead
		}
		if len(moves) > 1 {
			return st, stepBranch
		}
		st = applyMove(st, idx, moves[0])
	}
}

// applyMove returns a new state with the given color's head advanced to
// dst, closing the color when dst is its target.
func applyMove(st *frontierState, colorIdx int, dst board.Cell) *frontierState {
	next := st.clone()
	cs := next.colors[colorIdx]
	if next.grid.At(dst) == 0 {
		next.filled++
	}
	next.grid[dst.Row][dst.Col] = cs.Color
	cs.Head = dst
	if dst == cs.Target {
		cs.Closed = true
	}
	next.colors[colorIdx] = cs
	return next
}

// score orders the priority queue: states closer to fully filled sort
// first, with insertion order breaking ties so equally-good states
// behave as FIFO among themselves.
func score(st *frontierState, seq int64) int64 {
	n := st.grid.Size()
	remaining := int64(n*n - st.filled)
	return remaining<<40 + seq
}

// Solve searches for a completion of b using best-first expansion,
// returning the filled board, the number of states dequeued, and an
// error that is ErrNoSolution or ErrTimeout on failure.
func Solve(b board.Board, deadline time.Time) (board.Board, int64, error) {
	e := &engine{deadline: deadline}
	pairs := board.BuildPairs(b)
	initial := newInitialState(b, pairs)

	pq := queue.NewPQ()
	pq.Push(initial, score(initial, e.seq))

	for pq.Len() > 0 {
		raw, _ := pq.Pop()
		st := raw.(*frontierState)
		e.nodeCount++

		branched, status := e.advance(st)
		switch status {
		case stepGoal:
			return branched.grid, e.nodeCount, nil
		case stepTimeout:
			return nil, e.nodeCount, ErrTimeout
		case stepDead:
			continue
		}

		idx, moves := mostConstrained(branched)
		for _, mv := range moves {
			child := applyMove(branched, idx, mv)
			if deadOnArrival(child) {
				continue
			}
			e.seq++
			pq.Push(child, score(child, e.seq))
		}
	}
	return nil, e.nodeCount, ErrNoSolution
}
