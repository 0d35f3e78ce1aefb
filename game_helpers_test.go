package main

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

type recordingRenderer struct {
	frames [][][]bool
}

func (r *recordingRenderer) Clear() error { return nil }

func (r *recordingRenderer) Display(g *model.Grid) error {
	r.frames = append(r.frames, g.Snapshot())
	return nil
}

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.ScreenWidth, config.ScreenHeight, config.CellSize = 5, 5, 1
	config.FrameRate = utils.Duration{Duration: time.Millisecond}
	config.StartEmpty = true
	config.Seed = 1
	return config
}

func TestDecideAfterTick(t *testing.T) {
	config := utils.DefaultConfig()
	config.MaxGenerations = 10
	config.StagnationThreshold = 3

	tests := []struct {
		name       string
		extinct    bool
		stagnant   int
		generation int
		policy     string
		want       action
	}{
		{"active", false, 0, 1, utils.OnExtinctReset, actionContinue},
		{"max generations", false, 0, 10, utils.OnExtinctReset, actionHalt},
		{"max generations wins over extinction", true, 0, 10, utils.OnExtinctReset, actionHalt},
		{"extinct reset", true, 0, 1, utils.OnExtinctReset, actionReset},
		{"extinct halt", true, 0, 1, utils.OnExtinctHalt, actionHalt},
		{"extinct report", true, 5, 1, utils.OnExtinctReport, actionContinue},
		{"stagnant below threshold", false, 2, 1, utils.OnExtinctHalt, actionContinue},
		{"stagnant", false, 3, 1, utils.OnExtinctHalt, actionReset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.OnExtinct = tt.policy
			got, _ := decideAfterTick(tt.extinct, tt.stagnant, tt.generation, config)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeedGrid(t *testing.T) {
	config := testConfig()
	config.InitialCells = []utils.CellPosition{{Row: 0, Col: 0}}
	config.Patterns = []utils.PatternPlacement{{Name: "blinker", Row: 2, Col: 1}}

	gm, err := newGame(config, &recordingRenderer{}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 4, gm.grid.CountLivingCells())
	assert.True(t, gm.grid.IsAlive(0, 0))
	assert.True(t, gm.grid.IsAlive(2, 3))
}

func TestSeedGridRejectsBadPlacements(t *testing.T) {
	config := testConfig()
	config.InitialCells = []utils.CellPosition{{Row: 9, Col: 0}}
	_, err := newGame(config, &recordingRenderer{}, io.Discard)
	assert.True(t, errors.Is(err, model.ErrOutOfRange))

	config = testConfig()
	config.Patterns = []utils.PatternPlacement{{Name: "spaceship"}}
	_, err = newGame(config, &recordingRenderer{}, io.Discard)
	assert.True(t, errors.Is(err, model.ErrUnknownPattern))
}

func TestSeedGridRandomIsReproducible(t *testing.T) {
	config := testConfig()
	config.StartEmpty = false
	config.Seed = 99

	a, err := newGame(config, &recordingRenderer{}, io.Discard)
	require.NoError(t, err)
	b, err := newGame(config, &recordingRenderer{}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, a.grid.Snapshot(), b.grid.Snapshot())
}

func TestRunHaltsAtMaxGenerations(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 3
	config.StagnationThreshold = 0
	config.Patterns = []utils.PatternPlacement{{Name: "blinker", Row: 2, Col: 1}}
	r := &recordingRenderer{}

	gm, err := newGame(config, r, io.Discard)
	require.NoError(t, err)
	require.NoError(t, gm.run(context.Background()))

	assert.Equal(t, 3, gm.generation)
	require.Len(t, r.frames, 4)
	assert.Equal(t, r.frames[0], r.frames[2])
	assert.Equal(t, r.frames[1], r.frames[3])
	assert.NotEqual(t, r.frames[0], r.frames[1])
}

func TestRunResetsOnExtinction(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 2
	config.OnExtinct = utils.OnExtinctReset
	config.InitialCells = []utils.CellPosition{{Row: 2, Col: 2}}

	gm, err := newGame(config, &recordingRenderer{}, io.Discard)
	require.NoError(t, err)
	require.NoError(t, gm.run(context.Background()))

	assert.Equal(t, 1, gm.stats.Resets)
	assert.Equal(t, 1, gm.lastRestartGen)
}

func TestRunHaltsOnExtinction(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 0
	config.OnExtinct = utils.OnExtinctHalt
	config.InitialCells = []utils.CellPosition{{Row: 2, Col: 2}}

	gm, err := newGame(config, &recordingRenderer{}, io.Discard)
	require.NoError(t, err)
	require.NoError(t, gm.run(context.Background()))

	assert.Equal(t, 1, gm.generation)
	assert.True(t, gm.grid.IsExtinct())
}

func TestRunResetsOnStagnation(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 4
	config.StagnationThreshold = 2
	config.Patterns = []utils.PatternPlacement{{Name: "block", Row: 1, Col: 1}}

	gm, err := newGame(config, &recordingRenderer{}, io.Discard)
	require.NoError(t, err)
	require.NoError(t, gm.run(context.Background()))

	assert.Equal(t, 1, gm.stats.Resets)
}

func TestRunStopsOnCancel(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 0
	config.OnExtinct = utils.OnExtinctReport

	gm, err := newGame(config, &recordingRenderer{}, io.Discard)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, gm.run(ctx))
}

func TestRunGameInterrupted(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 0
	config.OnExtinct = utils.OnExtinctReport

	gm, err := newGame(config, &recordingRenderer{}, io.Discard)
	require.NoError(t, err)

	sigChan := make(chan os.Signal, 1)
	sigChan <- os.Interrupt
	err = runGame(context.Background(), gm, sigChan)
	assert.True(t, errors.Is(err, errInterrupted))
}

func TestRunGameFinishes(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 2

	gm, err := newGame(config, &recordingRenderer{}, io.Discard)
	require.NoError(t, err)
	assert.NoError(t, runGame(context.Background(), gm, make(chan os.Signal)))
}
