package main

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/hovissimo/conway/life"
)

// benchSeed fills a board at roughly 15% density, deterministic per bound.
func benchSeed(bound int) life.Board {
	rng := rand.New(rand.NewSource(int64(bound)))
	board := make(life.Board)
	for x := 0; x < bound; x++ {
		for y := 0; y < bound; y++ {
			if rng.Float64() < 0.15 {
				board.Add(life.Cell{X: x, Y: y})
			}
		}
	}
	return board
}

// BenchmarkStep compares the sequential and partitioned scans across torus
// sizes. Each iteration steps from the same seed so runs are comparable.
func BenchmarkStep(b *testing.B) {
	for _, bound := range []int{15, 64, 256} {
		engine, err := life.NewEngine(bound)
		if err != nil {
			b.Fatalf("NewEngine(%d): %v", bound, err)
		}
		seed := benchSeed(bound)

		b.Run(fmt.Sprintf("%dx%d-sequential", bound, bound), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				engine.Step(seed)
			}
		})

		b.Run(fmt.Sprintf("%dx%d-parallel", bound, bound), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				engine.StepParallel(seed)
			}
		})
	}
}
