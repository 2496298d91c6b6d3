package render

import (
	"fmt"
	"io"

	"github.com/hovissimo/conway/life"
)

const (
	liveGlyph = '@'
	deadGlyph = '`'
)

// Terminal renders board snapshots as plain text, one grid row per line.
type Terminal struct {
	Out io.Writer
}

// Display writes the board in row/column scan order: for each row, a glyph
// per column, then a newline.
func (r *Terminal) Display(board life.Board, bound int) {
	for y := 0; y < bound; y++ {
		for x := 0; x < bound; x++ {
			glyph := deadGlyph
			if board.Contains(life.Cell{X: x, Y: y}) {
				glyph = liveGlyph
			}
			fmt.Fprintf(r.Out, "%c", glyph)
		}
		fmt.Fprintln(r.Out)
	}
}
