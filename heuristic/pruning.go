package heuristic

import (
	"github.com/flowcore/numberlink/board"
	"github.com/flowcore/numberlink/reach"
)

// legalMoves returns the cells an open color may step its head into: empty
// neighbors, or its own target (closing the path).
func legalMoves(st *frontierState, cs colorState) []board.Cell {
	n := st.grid.Size()
	var moves []board.Cell
	for _, nb := range board.Neighbors4(cs.Head, n, nil) {
		v := st.grid.At(nb)
		if v == 0 || nb == cs.Target {
			moves = append(moves, nb)
		}
	}
	return moves
}

// mostConstrained picks the open color with the fewest legal moves,
// breaking ties by color id, per spec.md §4.5's most-constrained-color
// rule. It returns -1 when every color is closed.
func mostConstrained(st *frontierState) (idx int, moves []board.Cell) {
	idx = -1
	best := -1
	for i, cs := range st.colors {
		if cs.Closed {
			continue
		}
		mv := legalMoves(st, cs)
		if best == -1 || len(mv) < best {
			best = len(mv)
			idx = i
			moves = mv
		}
	}
	return idx, moves
}

// deadEnd reports whether some open color has no legal move at all: its
// head is boxed in and not adjacent to its own target.
func deadEnd(st *frontierState) bool {
	for _, cs := range st.colors {
		if cs.Closed {
			continue
		}
		if len(legalMoves(st, cs)) == 0 {
			return true
		}
	}
	return false
}

// stranded reports whether any maximal component of empty cells has
// become unreachable from every remaining open head or target — a
// necessary condition for completability per spec.md §4.5. It also
// confirms, via A*, that each open color can still reach its target
// through open cells at all.
func stranded(st *frontierState) bool {
	n := st.grid.Size()
	for _, cs := range st.colors {
		if cs.Closed {
			continue
		}
		if cs.Head == cs.Target {
			continue
		}
		if reach.ShortestOpenDistance(st.grid, cs.Head, cs.Target) == reach.Unreachable {
			return true
		}
	}

	visited := make(map[board.Cell]bool)
	endpoints := make(map[board.Cell]bool)
	for _, cs := range st.colors {
		if !cs.Closed {
			endpoints[cs.Head] = true
			endpoints[cs.Target] = true
		}
	}

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			start := board.Cell{Row: r, Col: c}
			if st.grid.At(start) != 0 || visited[start] {
				continue
			}
			component := []board.Cell{start}
			visited[start] = true
			touchesEndpoint := false
			var buf [4]board.Cell
			for i := 0; i < len(component); i++ {
				cur := component[i]
				for _, nb := range board.Neighbors4(cur, n, buf[:0]) {
					if endpoints[nb] {
						touchesEndpoint = true
					}
					if st.grid.At(nb) == 0 && !visited[nb] {
						visited[nb] = true
						component = append(component, nb)
					}
				}
			}
			if !touchesEndpoint {
				return true
			}
		}
	}
	return false
}

// chokepointDead catches the single-cell special case of a narrow
// passage: an empty cell with no empty neighbor at all can only be
// filled by an open color's head stepping straight into it, so when no
// open head is adjacent to it no future path can ever enter it. Broader
// narrow-passage pruning is subsumed by re-running stranded after every
// move, at the cost of discovering the dead end one ply later.
func chokepointDead(st *frontierState) bool {
	n := st.grid.Size()
	heads := make(map[board.Cell]bool)
	for _, cs := range st.colors {
		if !cs.Closed {
			heads[cs.Head] = true
		}
	}
	var buf [4]board.Cell
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := board.Cell{Row: r, Col: c}
			if st.grid.At(cell) != 0 {
				continue
			}
			openNeighbors := 0
			nextToHead := false
			for _, nb := range board.Neighbors4(cell, n, buf[:0]) {
				if st.grid.At(nb) == 0 {
					openNeighbors++
				}
				if heads[nb] {
					nextToHead = true
				}
			}
			if openNeighbors == 0 && !nextToHead {
				return true
			}
		}
	}
	return false
}

// deadOnArrival runs the cheap pruning checks in increasing order of
// cost: dead-end, then the single-cell chokepoint case, then the full
// component-reachability stranding check.
func deadOnArrival(st *frontierState) bool {
	if deadEnd(st) {
		return true
	}
	if chokepointDead(st) {
		return true
	}
	return stranded(st)
}
