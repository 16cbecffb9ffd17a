package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Printf("Error loading config: %+v\n", err)
			os.Exit(1)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	grid, pool, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Printf("Error initializing game: %+v\n", err)
		os.Exit(1)
	}
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		history       utils.History
		stagnantCount = 0
		lastFrameTime = time.Now()
		ticker        = time.NewTicker(config.FrameRate)
	)
	defer ticker.Stop()

	for {
		frameStart := time.Now()
		if err := renderer.Clear(); err != nil {
			fmt.Println("Error clearing terminal:", err)
		}

		status, isStagnant := updateGameState(grid, lastFrameTime, stats, &history)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(status, stats)
		if err := renderer.Display(grid); err != nil {
			fmt.Printf("Error rendering grid: %+v\n", err)
			break
		}

		if stop, reason := checkStopConditions(stats.Population, stagnantCount, grid.Generation(), config); stop {
			fmt.Printf("\n🏁 Stopping due to %s\n", reason)
			break
		}

		grid = advance(grid, pool)

		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				grid.Generation(), stats.Runtime().Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		case <-ticker.C:
		}
	}
}
