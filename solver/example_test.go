package solver_test

import (
	"fmt"

	"github.com/flowcore/numberlink/board"
	"github.com/flowcore/numberlink/solver"
)

// ExampleSolve demonstrates solving a 4×4 board with the default
// path-enumeration strategy.
func ExampleSolve() {
	grid := board.Board{
		{1, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 1, 2, 0},
		{0, 0, 0, 0},
	}

	res, err := solver.Solve(grid, solver.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("filled:", res.Board.Filled())
	// Output:
	// filled: true
}
