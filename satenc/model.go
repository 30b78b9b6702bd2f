// Package satenc provides a constraint-based solving strategy: a board
// is encoded into a Model of per-color path variables and handed to a
// Backend, an abstraction point mirroring the way an external SAT or
// SMT engine would be invoked if one were wired in. DefaultBackend is an
// in-process chronological-backtracking solver grounded on dancing
// links' cover/uncover-with-undo discipline (see
// taocp.XCC's "each primary item occurs exactly once" structuring)
// rather than a literal clause database, since no SAT/SMT library is
// available to bind to.
package satenc

import "github.com/flowcore/numberlink/board"

// colorVar is one color's path-building state: Head is the frontier
// cell most recently assigned, Target is fixed, Closed once Head has
// reached Target.
type colorVar struct {
	Color  int
	Head   board.Cell
	Target board.Cell
	Closed bool
}

// Model is the encoded form of a board: the primary constraint is exact
// cover of every cell by exactly one color; the secondary constraint,
// enforced incrementally during search rather than compiled into
// clauses, is that every color's assigned cells form a simple path
// between its two fixed endpoints.
type Model struct {
	initial board.Board
	colors  []colorVar
}

// Encode builds a Model from b. The caller must have already validated
// b with board.Validate.
func Encode(b board.Board) *Model {
	pairs := board.BuildPairs(b)
	ids := pairs.Colors()
	colors := make([]colorVar, len(ids))
	for i, id := range ids {
		p := pairs[id]
		colors[i] = colorVar{Color: id, Head: p.Start, Target: p.End}
	}
	return &Model{initial: b.Clone(), colors: colors}
}
