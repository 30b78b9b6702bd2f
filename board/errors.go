package board

import "errors"

// Sentinel errors for the fixed validation failures. A board whose
// failure needs a dynamic reason (e.g. "color 3 has 3 endpoint cells")
// is reported via InvalidBoardError instead.
var (
	// ErrEmptyBoard indicates a board with no rows. Rows of length zero
	// under a non-empty board are reported as ErrNonSquare.
	ErrEmptyBoard = errors.New("board: must have at least one row and one column")
	// ErrNonSquare indicates the board is not N×N.
	ErrNonSquare = errors.New("board: must be square")
	// ErrSizeOutOfRange indicates N is outside [MinSize, MaxSize].
	ErrSizeOutOfRange = errors.New("board: size out of range")
	// ErrNegativeCell indicates a cell holds a negative value.
	ErrNegativeCell = errors.New("board: cell values must be non-negative")
	// ErrTooManyColors indicates more than MaxColors distinct colors are present.
	ErrTooManyColors = errors.New("board: too many distinct colors")
)

// InvalidBoardError reports a validation failure whose cause is specific
// to the input (a color without exactly two endpoint cells), mirroring
// flow.EdgeError's pattern of a typed struct error alongside plain
// sentinels for the fixed failure modes.
type InvalidBoardError struct {
	Color  int
	Count  int
	Reason string
}

func (e *InvalidBoardError) Error() string {
	return "board: " + e.Reason
}
