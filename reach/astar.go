// Package reach computes shortest open-cell distances on a board via A*
// with the Manhattan-distance heuristic, used both as a feasibility
// pruner and as a path-length lower bound by pathsolve and heuristic.
package reach

import (
	"github.com/flowcore/numberlink/board"
	"github.com/flowcore/numberlink/queue"
)

// Unreachable is the sentinel distance returned when no open-cell path
// connects s and t. Go has no natural "∞" for an int distance, so a named
// negative constant is used instead of math.Inf, matching the teacher's
// own convention of reserving math.Inf for float64 edge weights only
// (see tsp's distance matrices) and plain sentinels for integer results.
const Unreachable = -1

// ShortestOpenDistance returns the minimum number of 4-connected edges
// from s to t that cross only empty (value-0) cells, except that s and t
// themselves are exempt from the "empty" requirement — they typically
// carry a color label. Returns Unreachable if no such path exists.
//
// Algorithm: A* with the Manhattan-distance heuristic (admissible and
// consistent on a 4-connected unit-cost grid) and a generation-time
// closed set, grounded on graph.Dijkstra's heap/visited shape generalized
// from uniform-cost relaxation to f = g + h ordering.
//
// Complexity: O(N² log N) worst case.
func ShortestOpenDistance(b board.Board, s, t board.Cell) int {
	n := b.Size()
	if s == t {
		return 0
	}

	open := func(c board.Cell) bool {
		return c == s || c == t || b.At(c) == 0
	}
	if !open(s) || !open(t) {
		return Unreachable
	}

	gScore := make(map[board.Cell]int, n*n)
	visited := make(map[board.Cell]bool, n*n)
	gScore[s] = 0

	pq := queue.NewPQ()
	pq.Push(s, int64(board.ManhattanDistance(s, t)))

	var nbrBuf [4]board.Cell
	for pq.Len() > 0 {
		raw, _ := pq.Pop()
		cur := raw.(board.Cell)
		if visited[cur] {
			continue
		}
		visited[cur] = true
		if cur == t {
			return gScore[cur]
		}

		neighbors := board.Neighbors4(cur, n, nbrBuf[:0])
		for _, nb := range neighbors {
			if visited[nb] || !open(nb) {
				continue
			}
			tentative := gScore[cur] + 1
			if cur2, ok := gScore[nb]; !ok || tentative < cur2 {
				gScore[nb] = tentative
				f := int64(tentative + board.ManhattanDistance(nb, t))
				pq.Push(nb, f)
			}
		}
	}

	return Unreachable
}
