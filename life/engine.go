package life

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Engine advances boards on a bound x bound torus. It keeps no state between
// calls beyond the bound itself; every step is a pure function of its input.
type Engine struct {
	bound int
}

// NewEngine creates an engine for a torus with the given side length.
// A non-positive bound is rejected up front: the wraparound arithmetic would
// otherwise divide by zero on the first neighbor lookup.
func NewEngine(bound int) (*Engine, error) {
	if bound <= 0 {
		return nil, errors.Errorf("[NewEngine] bound must be positive, got: %d", bound)
	}
	return &Engine{bound: bound}, nil
}

// Bound returns the side length of the torus.
func (e *Engine) Bound() int {
	return e.bound
}

// wrap maps any integer onto [0, bound) with a non-negative result, unlike
// Go's % operator on negative operands.
func wrap(v, bound int) int {
	v %= bound
	if v < 0 {
		v += bound
	}
	return v
}

/*
Neighbors returns the 8 cells adjacent to c on a bound-sized torus, wrapping
around the edges in both directions.

The enumeration order is a documented contract: dx outer, dy inner, each
ascending over {-1, 0, 1}, with the (0, 0) offset skipped. Set-based callers
are order-independent, but tests assert the literal sequence, so changing it
means changing them.
*/
func Neighbors(c Cell, bound int) []Cell {
	neighbors := make([]Cell, 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			neighbors = append(neighbors, Cell{
				X: wrap(c.X+dx, bound),
				Y: wrap(c.Y+dy, bound),
			})
		}
	}
	return neighbors
}

// NeighborCount returns how many of c's 8 neighbors are alive on the board.
func (e *Engine) NeighborCount(c Cell, board Board) (count int) {
	for _, n := range Neighbors(c, e.bound) {
		if board.Contains(n) {
			count++
		}
	}
	return
}

// Step returns the next generation of the passed board. Every cell in the
// bound x bound domain is scanned, dead cells included, because dead cells
// can be born; neighbor counts are always taken against the unmodified input.
// The result is a freshly allocated board that shares nothing with the input.
func (e *Engine) Step(board Board) Board {
	next := make(Board)
	for x := 0; x < e.bound; x++ {
		for y := 0; y < e.bound; y++ {
			c := Cell{X: x, Y: y}
			if NextState(board.Contains(c), e.NeighborCount(c, board)) {
				next.Add(c)
			}
		}
	}
	return next
}

// StepParallel computes the same result as Step by partitioning the columns
// across workers. The input board is read-only and shared; each worker fills
// its own private board, and the partial boards are unioned after all workers
// finish, so no synchronization is needed on either side.
func (e *Engine) StepParallel(board Board) Board {
	var (
		eg            errgroup.Group
		numWorkers    = min(runtime.NumCPU(), e.bound)
		colsPerWorker = (e.bound + numWorkers - 1) / numWorkers // Ceiling division
		parts         = make([]Board, 0, numWorkers)
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startCol = i * colsPerWorker
			endCol   = min(startCol+colsPerWorker, e.bound)
		)
		if startCol >= e.bound {
			break
		}

		part := make(Board)
		parts = append(parts, part)

		eg.Go(func() error {
			for x := startCol; x < endCol; x++ {
				for y := 0; y < e.bound; y++ {
					c := Cell{X: x, Y: y}
					if NextState(board.Contains(c), e.NeighborCount(c, board)) {
						part.Add(c)
					}
				}
			}
			return nil
		})
	}

	// Workers never fail; Wait only synchronizes.
	_ = eg.Wait()

	next := make(Board)
	for _, part := range parts {
		for c := range part {
			next.Add(c)
		}
	}
	return next
}
