package life

// Cell is a single grid coordinate. Cells are plain values: two cells are
// equal iff both components match, which makes them directly usable as set
// keys with structural equality.
type Cell struct {
	X int
	Y int
}
