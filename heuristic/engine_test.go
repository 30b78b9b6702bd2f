package heuristic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowcore/numberlink/board"
)

func farDeadline() time.Time {
	return time.Now().Add(5 * time.Second)
}

func assertValidSolution(t *testing.T, orig, solved board.Board) {
	t.Helper()
	require.True(t, solved.Filled())
	n := orig.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := board.Cell{Row: r, Col: c}
			if v := orig.At(cell); v != 0 {
				assert.Equal(t, v, solved.At(cell), "preserved clue at %v", cell)
			}
		}
	}
	require.NoError(t, board.Validate(solved))
}

func TestSolveFourByFour(t *testing.T) {
	grid := board.Board{
		{1, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 1, 2, 0},
		{0, 0, 0, 0},
	}
	solved, nodes, err := Solve(grid, farDeadline())
	require.NoError(t, err)
	assert.Greater(t, nodes, int64(0))
	assertValidSolution(t, grid, solved)
}

func TestSolveAlreadySolvedBoardIsIdempotent(t *testing.T) {
	grid := board.Board{
		{1, 1},
		{2, 2},
	}
	solved, _, err := Solve(grid, farDeadline())
	require.NoError(t, err)
	assert.True(t, board.Equal(grid, solved))
}

func TestSolveDiagonalCrossIsImpossible(t *testing.T) {
	grid := board.Board{
		{1, 2},
		{2, 1},
	}
	_, _, err := Solve(grid, farDeadline())
	require.ErrorIs(t, err, ErrNoSolution)
}

func TestSolveTimeout(t *testing.T) {
	grid := board.Board{
		{1, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 1, 2, 0},
		{0, 0, 0, 0},
	}
	past := time.Now().Add(-time.Second)
	_, _, err := Solve(grid, past)
	require.ErrorIs(t, err, ErrTimeout)
}

func TestMostConstrainedPicksFewerMoves(t *testing.T) {
	// Color 1 has two legal moves; colors 2 and 3 have one each, and the
	// tie between them goes to the smaller color id (index 1).
	grid := board.Board{
		{1, 0, 2},
		{0, 0, 3},
		{1, 3, 2},
	}
	pairs := board.BuildPairs(grid)
	st := newInitialState(grid, pairs)
	idx, moves := mostConstrained(st)
	require.GreaterOrEqual(t, idx, 0)
	assert.NotEmpty(t, moves)
	assert.Equal(t, 1, idx)
	assert.Equal(t, []board.Cell{{Row: 0, Col: 1}}, moves)
}
