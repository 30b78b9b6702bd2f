package heuristic

import "github.com/flowcore/numberlink/board"

// colorState is one open or closed color's routing progress: Head is the
// current tip of its partial path, Target its fixed other endpoint.
type colorState struct {
	Color  int
	Head   board.Cell
	Target board.Cell
	Closed bool
}

// frontierState is one node of the best-first search: a full-size grid
// plus per-color head positions and which colors remain open, per
// spec.md §4.5. States are owned by the search; none escape after Solve
// returns except the final winning grid.
type frontierState struct {
	grid   board.Board
	colors []colorState
	filled int
}

// clone returns an independent copy safe for a sibling branch to mutate.
func (s *frontierState) clone() *frontierState {
	return &frontierState{
		grid:   s.grid.Clone(),
		colors: append([]colorState(nil), s.colors...),
		filled: s.filled,
	}
}

func newInitialState(b board.Board, pairs board.PairIndex) *frontierState {
	colors := pairs.Colors()
	st := &frontierState{
		grid:   b.Clone(),
		colors: make([]colorState, len(colors)),
	}
	for i, c := range colors {
		p := pairs[c]
		st.colors[i] = colorState{Color: c, Head: p.Start, Target: p.End}
	}
	for _, row := range st.grid {
		for _, v := range row {
			if v > 0 {
				st.filled++
			}
		}
	}
	return st
}

// allClosed reports whether every color in st has reached its target.
func (s *frontierState) allClosed() bool {
	for _, cs := range s.colors {
		if !cs.Closed {
			return false
		}
	}
	return true
}
