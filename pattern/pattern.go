// Package pattern holds the named seed boards the driver starts from.
// Patterns are plain data sized for the default 15-cell torus; they carry no
// game logic.
package pattern

import (
	"github.com/pkg/errors"

	"github.com/hovissimo/conway/life"
)

// Glider returns the classic five-cell glider.
func Glider() life.Board {
	return life.NewBoard(
		life.Cell{X: 9, Y: 6},
		life.Cell{X: 9, Y: 7},
		life.Cell{X: 9, Y: 8},
		life.Cell{X: 10, Y: 6},
		life.Cell{X: 11, Y: 7},
	)
}

// Spinner returns a three-cell blinker that oscillates with period 2.
func Spinner() life.Board {
	return life.NewBoard(
		life.Cell{X: 11, Y: 1},
		life.Cell{X: 11, Y: 2},
		life.Cell{X: 11, Y: 3},
	)
}

// Beehive returns a six-cell still life.
func Beehive() life.Board {
	return life.NewBoard(
		life.Cell{X: 1, Y: 10},
		life.Cell{X: 2, Y: 9},
		life.Cell{X: 2, Y: 11},
		life.Cell{X: 3, Y: 9},
		life.Cell{X: 3, Y: 11},
		life.Cell{X: 4, Y: 10},
	)
}

// Spinnersplosion returns a four-cell seed that erupts into spinners.
func Spinnersplosion() life.Board {
	return life.NewBoard(
		life.Cell{X: 6, Y: 7},
		life.Cell{X: 7, Y: 7},
		life.Cell{X: 8, Y: 7},
		life.Cell{X: 7, Y: 9},
	)
}

// Union merges any number of boards into one fresh board. The inputs are
// never mutated and share nothing with the result.
func Union(boards ...life.Board) life.Board {
	merged := make(life.Board)
	for _, b := range boards {
		for c := range b {
			merged.Add(c)
		}
	}
	return merged
}

// ByName resolves a pattern name from configuration to a fresh seed board.
func ByName(name string) (life.Board, error) {
	switch name {
	case "glider":
		return Glider(), nil
	case "spinner":
		return Spinner(), nil
	case "beehive":
		return Beehive(), nil
	case "spinnersplosion":
		return Spinnersplosion(), nil
	case "zoo":
		return Union(Glider(), Spinner(), Beehive()), nil
	default:
		return nil, errors.Errorf("[ByName] unknown pattern: %q", name)
	}
}
