package life

// Board is the set of live cells in one generation snapshot. Cells absent
// from the set are dead; the set never stores dead entries. Once a board has
// been handed to the engine it is treated as an immutable snapshot: stepping
// always produces a new Board and never writes to its input.
type Board map[Cell]struct{}

// NewBoard creates a board containing the given live cells.
func NewBoard(cells ...Cell) Board {
	b := make(Board, len(cells))
	for _, c := range cells {
		b[c] = struct{}{}
	}
	return b
}

// Contains reports whether the cell is alive on the board.
func (b Board) Contains(c Cell) bool {
	_, ok := b[c]
	return ok
}

// Add marks a cell as alive. Only used while assembling a board.
func (b Board) Add(c Cell) {
	b[c] = struct{}{}
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	clone := make(Board, len(b))
	for c := range b {
		clone[c] = struct{}{}
	}
	return clone
}

// Equal reports whether two boards contain exactly the same live cells.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for c := range b {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Population returns the number of live cells.
func (b Board) Population() int {
	return len(b)
}
