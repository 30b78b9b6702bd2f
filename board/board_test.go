package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		grid    Board
		wantErr error // non-nil sentinel, or nil meaning "expect no error"
		wantAny bool  // true when any non-nil error is acceptable (dynamic reason)
	}{
		{
			name:    "empty",
			grid:    Board{},
			wantErr: ErrEmptyBoard,
		},
		{
			name:    "non-square",
			grid:    Board{{1, 2}, {1}},
			wantErr: ErrNonSquare,
		},
		{
			name:    "too small",
			grid:    Board{{0}},
			wantErr: ErrSizeOutOfRange,
		},
		{
			name:    "negative cell",
			grid:    Board{{0, -1}, {0, 0}},
			wantErr: ErrNegativeCell,
		},
		{
			name:    "odd occurrence",
			grid:    Board{{1, 0}, {0, 0}},
			wantAny: true,
		},
		{
			name: "valid two colors",
			grid: Board{
				{1, 0, 0, 2},
				{0, 0, 0, 0},
				{0, 1, 2, 0},
				{0, 0, 0, 0},
			},
		},
		{
			name: "non-contiguous colors accepted",
			grid: Board{
				{1, 0, 0, 3},
				{0, 0, 0, 0},
				{0, 1, 3, 0},
				{0, 0, 0, 0},
			},
		},
		{
			name: "already-solved board accepted",
			grid: Board{{1, 2}, {1, 2}},
		},
		{
			name:    "three isolated cells of one color rejected",
			grid:    Board{{1, 0, 1}, {0, 0, 0}, {1, 0, 0}},
			wantAny: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.grid)
			switch {
			case tc.wantAny:
				require.Error(t, err)
			case tc.wantErr != nil:
				require.ErrorIs(t, err, tc.wantErr)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestBuildPairs(t *testing.T) {
	grid := Board{
		{1, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 1, 2, 0},
		{0, 0, 0, 0},
	}
	idx := BuildPairs(grid)
	require.Len(t, idx, 2)
	assert.Equal(t, Pair{Start: Cell{0, 0}, End: Cell{2, 1}}, idx[1])
	assert.Equal(t, Pair{Start: Cell{0, 3}, End: Cell{2, 2}}, idx[2])
	assert.Equal(t, []int{1, 2}, idx.Colors())
}

// TestBuildPairsOnAlreadyDrawnPath demonstrates the degree-based endpoint
// rule supporting solve(B) = B when B is already solved: the true path
// endpoints (degree ≤1), not merely the first two raw occurrences, are
// recovered even when a color spans more than two cells.
func TestBuildPairsOnAlreadyDrawnPath(t *testing.T) {
	grid := Board{
		{1, 1, 1},
		{2, 2, 1},
		{2, 0, 0},
	}
	// color 1 path: (0,0)-(0,1)-(0,2)-(1,2); color 2 path: (1,1)-(1,0)-(2,0).
	require.NoError(t, Validate(grid))
	idx := BuildPairs(grid)
	assert.Equal(t, Pair{Start: Cell{0, 0}, End: Cell{1, 2}}, idx[1])
	assert.Equal(t, Pair{Start: Cell{1, 1}, End: Cell{2, 0}}, idx[2])
}

func TestCloneIsIndependent(t *testing.T) {
	orig := Board{{1, 0}, {0, 1}}
	clone := orig.Clone()
	clone[0][1] = 9
	assert.Equal(t, 0, orig[0][1])
	assert.True(t, Equal(orig, Board{{1, 0}, {0, 1}}))
	assert.False(t, Equal(orig, clone))
}

func TestFilled(t *testing.T) {
	assert.False(t, Board{{1, 0}}.Filled())
	assert.True(t, Board{{1, 2}}.Filled())
}

func TestNeighbors4(t *testing.T) {
	n := 3
	got := Neighbors4(Cell{0, 0}, n, nil)
	assert.ElementsMatch(t, []Cell{{0, 1}, {1, 0}}, got)

	got = Neighbors4(Cell{1, 1}, n, nil)
	assert.ElementsMatch(t, []Cell{{0, 1}, {1, 0}, {1, 2}, {2, 1}}, got)
}

func TestManhattanDistance(t *testing.T) {
	assert.Equal(t, 0, ManhattanDistance(Cell{1, 1}, Cell{1, 1}))
	assert.Equal(t, 5, ManhattanDistance(Cell{0, 0}, Cell{2, 3}))
}
