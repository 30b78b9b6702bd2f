package board_test

import (
	"fmt"

	"github.com/flowcore/numberlink/board"
)

// ExampleBuildPairs demonstrates recovering endpoint pairs from a raw grid.
func ExampleBuildPairs() {
	grid := board.Board{
		{1, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 1, 2, 0},
		{0, 0, 0, 0},
	}
	if err := board.Validate(grid); err != nil {
		fmt.Println("invalid:", err)
		return
	}
	pairs := board.BuildPairs(grid)
	for _, color := range pairs.Colors() {
		p := pairs[color]
		fmt.Printf("color %d: %v -> %v\n", color, p.Start, p.End)
	}
	// Output:
	// color 1: {0 0} -> {2 1}
	// color 2: {0 3} -> {2 2}
}
