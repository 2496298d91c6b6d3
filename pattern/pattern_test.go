package pattern

import (
	"testing"

	"github.com/hovissimo/conway/life"
)

const defaultBound = 15

func TestPatternsFitDefaultBound(t *testing.T) {
	tests := []struct {
		name  string
		board life.Board
		cells int
	}{
		{"glider", Glider(), 5},
		{"spinner", Spinner(), 3},
		{"beehive", Beehive(), 6},
		{"spinnersplosion", Spinnersplosion(), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.Population(); got != tt.cells {
				t.Errorf("population = %d, want %d", got, tt.cells)
			}
			for c := range tt.board {
				if c.X < 0 || c.X >= defaultBound || c.Y < 0 || c.Y >= defaultBound {
					t.Errorf("cell %v outside the default %d-torus", c, defaultBound)
				}
			}
		})
	}
}

func TestUnionMergesWithoutAliasing(t *testing.T) {
	glider := Glider()
	spinner := Spinner()

	merged := Union(glider, spinner)
	if got, want := merged.Population(), glider.Population()+spinner.Population(); got != want {
		t.Errorf("union population = %d, want %d", got, want)
	}
	for c := range glider {
		if !merged.Contains(c) {
			t.Errorf("union is missing glider cell %v", c)
		}
	}

	merged.Add(life.Cell{X: 0, Y: 0})
	if glider.Contains(life.Cell{X: 0, Y: 0}) || spinner.Contains(life.Cell{X: 0, Y: 0}) {
		t.Error("mutating the union leaked into an input board")
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"glider", "spinner", "beehive", "spinnersplosion", "zoo"} {
		board, err := ByName(name)
		if err != nil {
			t.Errorf("ByName(%q): %v", name, err)
			continue
		}
		if board.Population() == 0 {
			t.Errorf("ByName(%q) returned an empty board", name)
		}
	}

	if _, err := ByName("gosper-gun"); err == nil {
		t.Error("ByName with an unknown name succeeded, want error")
	}
}

// TestBeehiveIsStillLife: the catalog's beehive must survive a step intact.
func TestBeehiveIsStillLife(t *testing.T) {
	engine, err := life.NewEngine(defaultBound)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	beehive := Beehive()
	if got := engine.Step(beehive); !got.Equal(beehive) {
		t.Errorf("Step(beehive) = %v, want the beehive unchanged", got)
	}
}
