package life

/*
NextState applies Conway's original B3/S23 rules to determine whether a cell
is alive in the next generation.

	alive, 2 or 3 neighbors -> alive (survival)
	alive, otherwise        -> dead  (isolation or overcrowding)
	dead, exactly 3         -> alive (birth)
	dead, otherwise         -> dead

The rule makes no assumption about the neighbor count's range, so it stays
correct for any integer input: (alive && neighbors == 2) || neighbors == 3
*/
func NextState(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
