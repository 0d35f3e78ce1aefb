package model

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned when a pattern name is not registered
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a set of live cells relative to a top-left anchor
type Pattern []Position

var (
	// Block is a 2x2 still life
	Block = Pattern{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	// Blinker is a horizontal period-2 oscillator
	Blinker = Pattern{{0, 0}, {0, 1}, {0, 2}}
	// Glider travels one cell diagonally every 4 generations
	Glider = Pattern{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
)

var patterns = map[string]Pattern{
	"block":   Block,
	"blinker": Blinker,
	"glider":  Glider,
}

// PatternByName looks up a built-in pattern
func PatternByName(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[PatternByName] %q", name)
	}
	return p, nil
}

// PatternNames returns the names of the built-in patterns in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Place sets the cells of p alive with its anchor at (row, col).
// Nothing is written if any cell of the pattern falls outside the grid.
func (g *Grid) Place(p Pattern, row, col int) error {
	for _, pos := range p {
		if !g.Contains(row+pos.Row, col+pos.Col) {
			return errors.Wrapf(ErrOutOfRange, "[Place] pattern at (%d, %d) on %dx%d grid", row, col, g.rows, g.cols)
		}
	}
	for _, pos := range p {
		g.cells[row+pos.Row][col+pos.Col] = Alive
	}
	return nil
}
