package board

// BuildPairs scans b in row-major order and records, for each color, the
// first two cells whose same-color degree is at most one ("endpoints").
// The first endpoint found becomes Pair.Start; this ordering matters
// because it seeds per-color path search in pathsolve and heuristic.
//
// For a sparse puzzle board (only the two endpoints drawn, everything
// else zero) this is equivalent to "first and second occurrence", since
// two disconnected same-color cells both have degree zero. It also
// works on an already-solved board, where the true endpoints are the two
// degree-1 ends of the drawn path rather than merely the first two
// occurrences scanned. Callers must have already validated b with
// Validate so that every positive color has exactly two such endpoints.
//
// Complexity: O(N²).
func BuildPairs(b Board) PairIndex {
	idx := make(PairIndex)
	for r, row := range b {
		for c, v := range row {
			if v == 0 {
				continue
			}
			cell := Cell{Row: r, Col: c}
			if degree(b, cell, v) > 1 {
				continue // interior cell of an already-drawn path, not an endpoint
			}
			pair, seen := idx[v]
			if !seen {
				idx[v] = Pair{Start: cell}
				continue
			}
			pair.End = cell
			idx[v] = pair
		}
	}
	return idx
}
