package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/render"
	"github.com/sheikhrachel/gol-engine/utils"
)

// gridOptions translates the configuration into grid construction options
func gridOptions(config utils.Config, pool *model.GridPool) []model.Option {
	opts := []model.Option{model.WithWorkers(config.Workers)}
	if config.Seed != 0 {
		opts = append(opts, model.WithSeed(config.Seed))
	}
	if config.Counter == "scan" {
		opts = append(opts, model.WithCounter(model.ScanCounter))
	}
	if pool != nil {
		opts = append(opts, model.WithPool(pool))
	}
	if config.Pattern != "random" {
		opts = append(opts, model.WithEmpty())
	}
	return opts
}

// newGrid builds the initial grid, placing the configured pattern at the centre
func newGrid(config utils.Config, pool *model.GridPool) (*model.Grid, error) {
	grid, err := model.NewGrid(config.Width, config.Height, gridOptions(config, pool)...)
	if err != nil {
		return nil, errors.Wrap(err, "[newGrid]")
	}

	var (
		cx = config.Width/2 - 1
		cy = config.Height/2 - 1
	)
	switch config.Pattern {
	case "glider":
		err = grid.AddGlider(cx, cy)
	case "blinker":
		err = grid.AddBlinker(cx, cy+1)
	case "block":
		err = grid.AddBlock(cx, cy)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "[newGrid] pattern %q does not fit a %dx%d grid",
			config.Pattern, config.Width, config.Height)
	}
	return grid, nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Grid,
	*model.GridPool,
	*render.TerminalRenderer,
	*utils.Stats,
	error,
) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	grid, err := newGrid(config, pool)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return grid, pool, render.NewTerminalRenderer(), utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	pw, ph := grid.PixelSize(config.CellSize)
	fmt.Printf("Features: Memory Pool: %v, Counter: %s, Pattern: %s\n",
		config.UseMemoryPool, config.Counter, config.Pattern)
	fmt.Printf("Grid: %dx%d (%dx%d px) | Initial living cells: %d\n",
		grid.Width(), grid.Height(), pw, ph, grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState records the current generation and returns its status
func updateGameState(
	grid *model.Grid,
	lastFrameTime time.Time,
	stats *utils.Stats,
	history *utils.History,
) (string, bool) {
	stats.Update(grid.Generation(), grid.CountLivingCells(), grid.Len(), time.Since(lastFrameTime))

	hash := grid.Hash()
	isStagnant := history.IsStagnant(hash)
	history.Add(hash)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if stats.Extinct() {
		status = "Extinct"
	}

	return status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(status string, stats *utils.Stats) {
	fmt.Printf("Gen: %d | Living: %d (peak %d) | Density: %.1f%% | Status: %s\n",
		stats.Generation, stats.Population, stats.PeakPopulation, stats.Density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Println()
}

// checkStopConditions determines if the simulation should stop
func checkStopConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}

// advance moves the simulation on one tick. With a pool the next generation
// is a fresh grid and the old one is recycled; without, the grid steps in place.
func advance(grid *model.Grid, pool *model.GridPool) *model.Grid {
	if pool == nil {
		grid.Step()
		return grid
	}
	next := grid.NextGeneration()
	model.GridToPool(grid, pool)
	return next
}
