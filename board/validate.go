package board

import "fmt"

// Validate checks shape and color-parity invariants for b.
//
// The contiguity of the color range [1,K] is intentionally NOT enforced:
// spec.md §9 notes the lenient policy (accept any color set where every
// present color has exactly two occurrences) as acceptable, and this is
// the policy adopted here.
//
// Parity is checked by endpoint DEGREE rather than by raw occurrence
// count: a color is valid when exactly two of its cells have at most one
// same-color 4-neighbor ("endpoints"); the degree of its other cells is
// not checked. For a sparse puzzle input (only the two
// endpoints drawn, no interior path yet) this coincides exactly with the
// simpler "occurs exactly twice" rule, because two disconnected cells
// both trivially have degree zero. But it also accepts an ALREADY-SOLVED
// board — every color filling a whole path — which a strict
// occurs-exactly-twice check would reject outright, breaking the
// round-trip property that solve(B) = B when B is already solved (see
// DESIGN.md's resolution of this tension).
//
// Complexity: O(N²).
func Validate(b Board) error {
	n := len(b)
	if n == 0 {
		return ErrEmptyBoard
	}
	for _, row := range b {
		if len(row) != n {
			return ErrNonSquare
		}
	}
	if n < MinSize || n > MaxSize {
		return ErrSizeOutOfRange
	}

	cellsByColor := make(map[int][]Cell)
	for r, row := range b {
		for c, v := range row {
			if v < 0 {
				return ErrNegativeCell
			}
			if v > 0 {
				cell := Cell{Row: r, Col: c}
				cellsByColor[v] = append(cellsByColor[v], cell)
			}
		}
	}
	if len(cellsByColor) > MaxColors {
		return ErrTooManyColors
	}

	for color, cells := range cellsByColor {
		endpoints := 0
		for _, cell := range cells {
			if degree(b, cell, color) <= 1 {
				endpoints++
			}
		}
		if endpoints != 2 {
			return &InvalidBoardError{
				Color: color,
				Count: len(cells),
				Reason: fmt.Sprintf(
					"color %d has %d endpoint cells (degree ≤1), want exactly 2",
					color, endpoints,
				),
			}
		}
	}

	return nil
}

// degree counts the same-color 4-neighbors of cell within b.
func degree(b Board, cell Cell, color int) int {
	n := len(b)
	d := 0
	for _, nb := range Neighbors4(cell, n, nil) {
		if b.At(nb) == color {
			d++
		}
	}
	return d
}
