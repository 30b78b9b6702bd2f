// Package wire encodes and decodes boards to and from the puzzle's
// exchange format: an N×N array of single-letter color codes over a
// fixed 16-symbol alphabet, with "." marking an empty cell. No library
// in the retrieved corpus targets this bespoke alphabet grid, so the
// codec is hand-rolled on top of encoding/json (see DESIGN.md).
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/flowcore/numberlink/board"
)

// alphabet maps color 1..16 to its wire letter; index 0 is unused.
var alphabet = [...]string{
	"", "R", "B", "Y", "G", "O", "C", "M", "m",
	"P", "A", "W", "g", "T", "b", "c", "p",
}

const empty = "."

// Encode renders b as a JSON array of strings, one per row, using
// alphabet letters for colors and "." for empty cells.
func Encode(b board.Board) ([]byte, error) {
	rows := make([]string, len(b))
	for r, row := range b {
		line := make([]byte, 0, len(row))
		for _, v := range row {
			switch {
			case v == 0:
				line = append(line, empty[0])
			case v > 0 && v < len(alphabet):
				line = append(line, alphabet[v][0])
			default:
				return nil, fmt.Errorf("wire: color %d has no alphabet letter", v)
			}
		}
		rows[r] = string(line)
	}
	return json.Marshal(rows)
}

// Decode parses the JSON array format Encode produces back into a Board.
func Decode(data []byte) (board.Board, error) {
	var rows []string
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("wire: invalid JSON: %w", err)
	}

	letterToColor := make(map[byte]int, len(alphabet)-1)
	for color := 1; color < len(alphabet); color++ {
		letterToColor[alphabet[color][0]] = color
	}

	out := make(board.Board, len(rows))
	for r, line := range rows {
		row := make([]int, len(line))
		for c := 0; c < len(line); c++ {
			ch := line[c]
			if ch == empty[0] {
				row[c] = 0
				continue
			}
			color, ok := letterToColor[ch]
			if !ok {
				return nil, fmt.Errorf("wire: unrecognized symbol %q at row %d col %d", ch, r, c)
			}
			row[c] = color
		}
		out[r] = row
	}
	return out, nil
}
