package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowcore/numberlink/board"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	grid := board.Board{
		{1, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 1, 2, 0},
		{0, 0, 0, 0},
	}
	data, err := Encode(grid)
	require.NoError(t, err)
	assert.JSONEq(t, `["R..B","....",".RB.","...."]`, string(data))

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, board.Equal(grid, decoded))
}

func TestDecodeRejectsUnknownSymbol(t *testing.T) {
	_, err := Decode([]byte(`["RZ"]`))
	require.Error(t, err)
}

func TestDecodeRejectsInvalidJSON(t *testing.T) {
	_, err := Decode([]byte(`not json`))
	require.Error(t, err)
}

func TestEncodeRejectsOutOfRangeColor(t *testing.T) {
	_, err := Encode(board.Board{{99}})
	require.Error(t, err)
}
