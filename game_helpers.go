package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

var errInterrupted = errors.New("interrupted")

type action int

const (
	actionContinue action = iota
	actionReset
	actionHalt
)

// renderer draws the grid once per tick
type renderer interface {
	Clear() error
	Display(g *model.Grid) error
}

// game owns the grid for the lifetime of a run
type game struct {
	config   utils.Config
	pool     *model.GridPool
	grid     *model.Grid
	history  *model.History
	renderer renderer
	stats    *utils.Stats
	rng      *rand.Rand
	out      io.Writer

	generation     int
	stagnantCount  int
	lastRestartGen int
}

// newGame sets up the initial game state
func newGame(config utils.Config, r renderer, out io.Writer) (*game, error) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gm := &game{
		config:   config,
		pool:     model.NewGridPool(),
		history:  model.NewHistory(0),
		renderer: r,
		stats:    utils.NewStats(),
		rng:      rand.New(rand.NewSource(seed)),
		out:      out,
	}

	grid, err := seedGrid(config, gm.pool, gm.rng)
	if err != nil {
		return nil, errors.Wrap(err, "[newGame]")
	}
	gm.grid = grid
	return gm, nil
}

// seedGrid builds a grid from the pool and applies the configured initial state
func seedGrid(config utils.Config, pool *model.GridPool, rng *rand.Rand) (*model.Grid, error) {
	rows, cols := config.GridDimensions()
	grid, err := pool.Get(rows, cols)
	if err != nil {
		return nil, errors.Wrap(err, "[seedGrid]")
	}

	if config.StartEmpty {
		grid.SeedEmpty()
	} else if err = grid.SeedRandom(config.AliveProbability, rng); err != nil {
		model.GridToPool(grid, pool)
		return nil, errors.Wrap(err, "[seedGrid]")
	}

	for _, cell := range config.InitialCells {
		if err = grid.Toggle(cell.Row, cell.Col, true); err != nil {
			model.GridToPool(grid, pool)
			return nil, errors.Wrap(err, "[seedGrid] initial cell")
		}
	}

	for _, placement := range config.Patterns {
		pattern, err := model.PatternByName(placement.Name)
		if err == nil {
			err = grid.Place(pattern, placement.Row, placement.Col)
		}
		if err != nil {
			model.GridToPool(grid, pool)
			return nil, errors.Wrap(err, "[seedGrid] pattern")
		}
	}

	return grid, nil
}

// decideAfterTick determines whether the run continues, restarts or stops
func decideAfterTick(extinct bool, stagnantCount, generation int, config utils.Config) (action, string) {
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return actionHalt, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	if extinct {
		switch config.OnExtinct {
		case utils.OnExtinctReset:
			return actionReset, "extinction"
		case utils.OnExtinctHalt:
			return actionHalt, "extinction"
		default:
			return actionContinue, "extinction"
		}
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return actionReset, "stagnation detected"
	}
	return actionContinue, ""
}

// tick advances the grid one generation and updates stagnation tracking
func (gm *game) tick() (action, string) {
	start := time.Now()
	gm.grid.Advance()
	gm.generation++
	gm.stats.Update(gm.generation, gm.grid.CountLivingCells(), time.Since(start))

	if gm.history.IsStagnant(gm.grid) {
		gm.stagnantCount++
	} else {
		gm.stagnantCount = 0
	}
	gm.history.Record(gm.grid)

	return decideAfterTick(gm.grid.IsExtinct(), gm.stagnantCount, gm.generation, gm.config)
}

// reset replaces the grid wholesale with a freshly seeded one
func (gm *game) reset() error {
	grid, err := seedGrid(gm.config, gm.pool, gm.rng)
	if err != nil {
		return errors.Wrap(err, "[reset]")
	}
	model.GridToPool(gm.grid, gm.pool)
	gm.grid = grid
	gm.history.Reset()
	gm.stagnantCount = 0
	gm.lastRestartGen = gm.generation
	gm.stats.Resets++
	return nil
}

// status summarises the current grid for the status line
func (gm *game) status() string {
	switch {
	case gm.grid.IsExtinct():
		return "Extinct"
	case gm.stagnantCount > 0:
		return fmt.Sprintf("Stagnant (%d)", gm.stagnantCount)
	default:
		return "Active"
	}
}

// render clears the screen and shows the status lines and the grid
func (gm *game) render() error {
	if err := gm.renderer.Clear(); err != nil {
		return err
	}

	rows, cols := gm.grid.Dimensions()
	living := gm.grid.CountLivingCells()
	density := float64(living) / float64(rows*cols) * 100

	fmt.Fprintf(gm.out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		gm.generation, living, density, gm.status())
	fmt.Fprintf(gm.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		gm.stats.GenerationsPerSecond, gm.stats.AveragePopulation, gm.stats.Runtime().Seconds())
	if gm.generation > gm.lastRestartGen {
		fmt.Fprintf(gm.out, "Generations since restart: %d\n", gm.generation-gm.lastRestartGen)
	}
	fmt.Fprintln(gm.out)

	return gm.renderer.Display(gm.grid)
}

// run drives the grid on the configured cadence until halted or ctx is done
func (gm *game) run(ctx context.Context) error {
	ticker := time.NewTicker(gm.config.FrameRate.Duration)
	defer ticker.Stop()

	if err := gm.render(); err != nil {
		return errors.Wrap(err, "[run] render")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		act, reason := gm.tick()
		if err := gm.render(); err != nil {
			return errors.Wrap(err, "[run] render")
		}

		switch act {
		case actionHalt:
			fmt.Fprintf(gm.out, "\n🏁 Halting: %s\n", reason)
			return nil
		case actionReset:
			fmt.Fprintf(gm.out, "🔄 Restarting due to %s...\n", reason)
			if err := gm.reset(); err != nil {
				return err
			}
		}
	}
}

// watchSignals returns errInterrupted when a signal arrives before ctx is done
func watchSignals(ctx context.Context, sigChan <-chan os.Signal) error {
	select {
	case <-ctx.Done():
		return nil
	case sig := <-sigChan:
		return errors.Wrapf(errInterrupted, "received %v", sig)
	}
}

// runGame runs the game loop alongside the signal watcher
func runGame(parent context.Context, gm *game, sigChan <-chan os.Signal) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return gm.run(ctx)
	})
	eg.Go(func() error {
		return watchSignals(ctx, sigChan)
	})

	return eg.Wait()
}

// printFinalStats summarises the run on exit
func printFinalStats(out io.Writer, gm *game) {
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds (%d restarts)\n",
		gm.generation, gm.stats.Runtime().Seconds(), gm.stats.Resets)
	fmt.Fprintf(out, "Average: %.1f gen/sec, %.1f avg population\n",
		gm.stats.GenerationsPerSecond, gm.stats.AveragePopulation)
}
