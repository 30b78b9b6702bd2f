// Package pathsolve implements the path-enumeration strategy ("A*
// strategy" in spec.md terms): per-color breadth-first enumeration of
// simple paths with recursive descent over colors, deadline-bounded.
//
// This strategy is complete — given enough time it always finds a
// solution if one exists, or proves none does — but its enumeration
// blows up well before 10×10 boards on hard instances; heuristic.Solve
// is the practical engine for larger puzzles.
package pathsolve

import (
	"time"

	"github.com/flowcore/numberlink/board"
	"github.com/flowcore/numberlink/queue"
	"github.com/flowcore/numberlink/reach"
)

// Solve attempts to complete b before deadline. It returns the solved
// board on success, or a nil board with ErrNoSolution / ErrTimeout. The
// returned node count is the number of partial-path dequeues performed,
// for dispatcher telemetry. Callers must have already validated b via
// board.Validate.
func Solve(b board.Board, deadline time.Time) (board.Board, int64, error) {
	pairs := board.BuildPairs(b)
	colors := pairs.Colors()
	var nodeCount int64

	result, err := solveColor(b.Clone(), colors, 0, pairs, deadline, &nodeCount)
	return result, nodeCount, err
}

// solveColor routes color colors[idx] to completion, then recurses on
// colors[idx+1:], per spec.md §4.4.
func solveColor(working board.Board, colors []int, idx int, pairs board.PairIndex, deadline time.Time, nodeCount *int64) (board.Board, error) {
	if idx == len(colors) {
		if working.Filled() {
			return working, nil
		}
		return nil, ErrNoSolution
	}

	color := colors[idx]
	pair := pairs[color]
	n := working.Size()

	minDist := reach.ShortestOpenDistance(working, pair.Start, pair.End)
	if minDist == reach.Unreachable {
		return nil, ErrNoSolution
	}

	// Lookahead: every later color must still be reachable on this
	// partial board, per spec.md §4.4 step 2.
	for _, other := range colors[idx+1:] {
		op := pairs[other]
		if reach.ShortestOpenDistance(working, op.Start, op.End) == reach.Unreachable {
			return nil, ErrNoSolution
		}
	}

	ar := newArena(n)
	root := ar.push(-1, pair.Start)
	fifo := queue.NewFIFO(n * n)
	fifo.Enqueue(root)

	seen := make(map[fingerprint]struct{})

	var nbrBuf [4]board.Cell
	for fifo.Len() > 0 {
		if time.Now().After(deadline) {
			return nil, ErrTimeout
		}
		*nodeCount++

		curIdx := fifo.Dequeue().(int)
		cur := ar.cell(curIdx)

		if cur == pair.End {
			if ar.depth(curIdx) < minDist {
				continue // below the lower-bound gate, spec.md §4.4 step 4
			}
			fp := ar.fingerprint(curIdx)
			if _, dup := seen[fp]; dup {
				continue
			}
			seen[fp] = struct{}{}

			candidate := applyPath(working, ar.path(curIdx), color)
			sub, err := solveColor(candidate, colors, idx+1, pairs, deadline, nodeCount)
			if err == nil {
				return sub, nil
			}
			if err == ErrTimeout {
				return nil, err
			}
			continue
		}

		for _, nb := range board.Neighbors4(cur, n, nbrBuf[:0]) {
			if ar.contains(curIdx, nb) {
				continue
			}
			if working.At(nb) != 0 && nb != pair.End {
				continue
			}
			fifo.Enqueue(ar.push(curIdx, nb))
		}
	}

	return nil, ErrNoSolution
}

// applyPath returns a copy of working with every cell of path set to color.
func applyPath(working board.Board, path []board.Cell, color int) board.Board {
	out := working.Clone()
	for _, c := range path {
		out[c.Row][c.Col] = color
	}
	return out
}
