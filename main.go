package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hovissimo/conway/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		config = utils.DefaultConfig()
	}
	if err = config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %+v\n", err)
		os.Exit(1)
	}

	engine, board, screen, stats, err := initializeGame(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %+v\n", err)
		os.Exit(1)
	}
	var (
		generation    = 0
		lastFrameTime = time.Now()
	)

	// Fini restores the terminal, so the summary prints after it runs.
	defer func() {
		fmt.Printf("Final stats: %d generations in %.1f seconds\n",
			generation, time.Since(stats.StartTime).Seconds())
		fmt.Printf("Average population: %.1f\n", stats.AveragePopulation)
	}()
	defer screen.Fini()

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	keys := screen.Keys()

	// Main loop: the current board is threaded through explicitly; each
	// generation is a fresh snapshot and the previous one is dropped.
	for {
		frameStart := time.Now()
		stats.Update(generation, board.Population(), time.Since(lastFrameTime))
		lastFrameTime = frameStart

		screen.Display(board, engine.Bound(), statusLine(generation, board, stats))

		select {
		case <-sigChan:
			return
		case <-keys:
			return
		case <-time.After(config.Delay):
		}

		board = stepBoard(engine, board, config)
		generation++

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			return
		}
	}
}
