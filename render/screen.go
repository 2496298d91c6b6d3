package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/hovissimo/conway/life"
)

// Screen renders board snapshots to a full terminal screen.
type Screen struct {
	screen tcell.Screen
}

// NewScreen takes over the terminal. Callers must Fini to restore it.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreen] failed to create screen")
	}
	if err = s.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreen] failed to initialize screen")
	}
	s.Clear()
	return &Screen{screen: s}, nil
}

// Display draws the board in row/column scan order with a status line below
// the grid, then flushes the frame.
func (s *Screen) Display(board life.Board, bound int, status string) {
	style := tcell.StyleDefault
	for y := 0; y < bound; y++ {
		for x := 0; x < bound; x++ {
			glyph := deadGlyph
			if board.Contains(life.Cell{X: x, Y: y}) {
				glyph = liveGlyph
			}
			s.screen.SetContent(x, y, glyph, nil, style)
		}
	}
	for i, r := range status {
		s.screen.SetContent(i, bound+1, r, nil, style)
	}
	s.screen.Show()
}

// Keys returns a channel that delivers one value per keypress. The channel
// closes when the screen shuts down.
func (s *Screen) Keys() <-chan struct{} {
	keys := make(chan struct{})
	go func() {
		defer close(keys)
		for {
			switch s.screen.PollEvent().(type) {
			case *tcell.EventKey:
				keys <- struct{}{}
			case *tcell.EventResize:
				s.screen.Sync()
			case nil:
				// Screen finalized.
				return
			}
		}
	}()
	return keys
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.screen.Fini()
}
