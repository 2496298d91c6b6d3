package main

import (
	"fmt"

	"github.com/hovissimo/conway/life"
	"github.com/hovissimo/conway/pattern"
	"github.com/hovissimo/conway/render"
	"github.com/hovissimo/conway/utils"
)

// initializeGame sets up the engine, seed board, screen, and stats.
func initializeGame(config utils.Config) (
	*life.Engine,
	life.Board,
	*render.Screen,
	*utils.Stats,
	error,
) {
	engine, err := life.NewEngine(config.Bound)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	board, err := pattern.ByName(config.Pattern)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	screen, err := render.NewScreen()
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return engine, board, screen, utils.NewStats(), nil
}

// statusLine formats the per-frame status text shown below the grid.
func statusLine(generation int, board life.Board, stats *utils.Stats) string {
	return fmt.Sprintf("Gen: %d | Living: %d | %.1f gen/sec | press any key to quit",
		generation, board.Population(), stats.GenerationsPerSecond)
}

// stepBoard advances one generation with the configured strategy.
func stepBoard(engine *life.Engine, board life.Board, config utils.Config) life.Board {
	if config.UseParallel {
		return engine.StepParallel(board)
	}
	return engine.Step(board)
}
