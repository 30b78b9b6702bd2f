package satenc

import (
	"github.com/flowcore/numberlink/board"
	"github.com/flowcore/numberlink/reach"
)

// searchState is the mutable board and per-color cursor shared by one
// chronological-backtracking descent. Unlike heuristic's best-first
// search, which keeps a frontier of many candidate states ordered by a
// priority queue, this explores one line of assignment at a time and
// undoes exactly the move it made on backtrack — the classic DPLL
// assign/unassign discipline applied to grid cells instead of clause
// literals.
type searchState struct {
	grid   board.Board
	colors []colorVar
	filled int
}

func newSearchState(m *Model) *searchState {
	s := &searchState{
		grid:   m.initial.Clone(),
		colors: append([]colorVar(nil), m.colors...),
	}
	for _, row := range s.grid {
		for _, v := range row {
			if v > 0 {
				s.filled++
			}
		}
	}
	return s
}

func (s *searchState) done() bool {
	if s.filled != s.grid.Size()*s.grid.Size() {
		return false
	}
	for _, cs := range s.colors {
		if !cs.Closed {
			return false
		}
	}
	return true
}

func (s *searchState) legalMoves(cs colorVar) []board.Cell {
	n := s.grid.Size()
	var moves []board.Cell
	for _, nb := range board.Neighbors4(cs.Head, n, nil) {
		v := s.grid.At(nb)
		if v == 0 || nb == cs.Target {
			moves = append(moves, nb)
		}
	}
	return moves
}

// mostConstrained picks the open color with fewest legal moves, same
// variable-ordering heuristic dancing links uses when choosing the
// column with the smallest item count.
func (s *searchState) mostConstrained() (idx int, moves []board.Cell) {
	idx = -1
	best := -1
	for i, cs := range s.colors {
		if cs.Closed {
			continue
		}
		mv := s.legalMoves(cs)
		if best == -1 || len(mv) < best {
			idx, best, moves = i, len(mv), mv
		}
	}
	return idx, moves
}

// feasible is the same stranding check heuristic uses: every open color
// must still reach its target through open cells, and every maximal
// empty component must border some open endpoint.
func (s *searchState) feasible() bool {
	n := s.grid.Size()
	for _, cs := range s.colors {
		if cs.Closed {
			continue
		}
		if reach.ShortestOpenDistance(s.grid, cs.Head, cs.Target) == reach.Unreachable {
			return false
		}
	}

	endpoints := make(map[board.Cell]bool)
	for _, cs := range s.colors {
		if !cs.Closed {
			endpoints[cs.Head] = true
			endpoints[cs.Target] = true
		}
	}

	visited := make(map[board.Cell]bool)
	var buf [4]board.Cell
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			start := board.Cell{Row: r, Col: c}
			if s.grid.At(start) != 0 || visited[start] {
				continue
			}
			comp := []board.Cell{start}
			visited[start] = true
			touches := false
			for i := 0; i < len(comp); i++ {
				for _, nb := range board.Neighbors4(comp[i], n, buf[:0]) {
					if endpoints[nb] {
						touches = true
					}
					if s.grid.At(nb) == 0 && !visited[nb] {
						visited[nb] = true
						comp = append(comp, nb)
					}
				}
			}
			if !touches {
				return false
			}
		}
	}
	return true
}

// assign moves colorIdx's head to dst, returning the undo state needed
// to reverse exactly this move.
func (s *searchState) assign(colorIdx int, dst board.Cell) (prevColor colorVar, prevCellVal int, prevFilled int) {
	prevColor = s.colors[colorIdx]
	prevCellVal = s.grid.At(dst)
	prevFilled = s.filled

	cs := prevColor
	if prevCellVal == 0 {
		s.filled++
	}
	s.grid[dst.Row][dst.Col] = cs.Color
	cs.Head = dst
	if dst == cs.Target {
		cs.Closed = true
	}
	s.colors[colorIdx] = cs
	return
}

// undo reverses exactly the move made by a prior assign call.
func (s *searchState) undo(colorIdx int, dst board.Cell, prevColor colorVar, prevCellVal, prevFilled int) {
	s.grid[dst.Row][dst.Col] = prevCellVal
	s.colors[colorIdx] = prevColor
	s.filled = prevFilled
}
