package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/rules"
)

var (
	ErrInvalidDimensions  = errors.New("grid dimensions must be positive")
	ErrOutOfRange         = errors.New("position outside grid")
	ErrInvalidProbability = errors.New("probability must lie in [0, 1]")
)

// RandomSource supplies uniformly distributed values in [0, 1), *rand.Rand satisfies it
type RandomSource interface {
	Float64() float64
}

// Grid is a fixed-size, non-wrapping Game of Life board.
//
// Two buffers hold the current and the next generation. Advance fills the next
// buffer from a View of the current one and then swaps them, so no cell update
// can be observed by a neighbor during the same generation.
type Grid struct {
	rows       int
	cols       int
	cells      [][]Cell
	next       [][]Cell
	generation int
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	g := &Grid{}
	if err := g.reset(rows, cols); err != nil {
		return nil, errors.Wrap(err, "[NewGrid]")
	}
	return g, nil
}

func newBuffer(rows, cols int) [][]Cell {
	buf := make([][]Cell, rows)
	for i := range buf {
		buf[i] = make([]Cell, cols)
	}
	return buf
}

// reset resizes the grid to new dimensions and kills every cell
func (g *Grid) reset(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "got %dx%d", rows, cols)
	}
	if g.rows != rows || g.cols != cols || g.cells == nil {
		g.rows, g.cols = rows, cols
		g.cells = newBuffer(rows, cols)
		g.next = newBuffer(rows, cols)
	} else {
		g.SeedEmpty()
	}
	g.generation = 0
	return nil
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns of the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Dimensions returns the number of rows and columns of the grid
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// Generation returns the number of advances since the grid was last seeded
func (g *Grid) Generation() int {
	return g.generation
}

// View returns a read-only view of the current generation.
// The view is invalidated by the next call to Advance.
func (g *Grid) View() View {
	return View{rows: g.rows, cols: g.cols, cells: g.cells}
}

// Contains reports whether (row, col) lies inside the grid
func (g *Grid) Contains(row, col int) bool {
	return g.View().Contains(row, col)
}

// IsAlive returns the state of a cell, positions outside the grid are dead
func (g *Grid) IsAlive(row, col int) bool {
	return g.View().IsAlive(row, col)
}

// CountAliveNeighbors counts living neighbors of (row, col) in the current generation
func (g *Grid) CountAliveNeighbors(row, col int) int {
	return g.View().CountAliveNeighbors(row, col)
}

// Toggle sets a single cell alive (true) or dead (false) outside of an advance
func (g *Grid) Toggle(row, col int, alive bool) error {
	if !g.Contains(row, col) {
		return errors.Wrapf(ErrOutOfRange, "[Toggle] (%d, %d) on %dx%d grid", row, col, g.rows, g.cols)
	}
	g.cells[row][col] = cellOf(alive)
	return nil
}

// SeedEmpty kills every cell
func (g *Grid) SeedEmpty() {
	for row := range g.rows {
		for col := range g.cols {
			g.cells[row][col] = Dead
		}
	}
	g.generation = 0
}

// SeedRandom sets each cell alive independently with the given probability.
// Cells are visited row by row, so a deterministic source yields a deterministic grid.
func (g *Grid) SeedRandom(probability float64, src RandomSource) error {
	if probability < 0 || probability > 1 {
		return errors.Wrapf(ErrInvalidProbability, "[SeedRandom] got %v", probability)
	}
	for row := range g.rows {
		for col := range g.cols {
			g.cells[row][col] = cellOf(src.Float64() < probability)
		}
	}
	g.generation = 0
	return nil
}

// Advance applies the B3/S23 rule to every cell synchronously
func (g *Grid) Advance() {
	current := g.View()
	for row := range g.rows {
		for col := range g.cols {
			g.stage(current, row, col)
		}
	}
	g.commit()
}

// stage computes the next state of (row, col) from current into the next buffer
func (g *Grid) stage(current View, row, col int) {
	g.next[row][col] = cellOf(rules.ApplyConwayRules(
		current.CountAliveNeighbors(row, col),
		current.IsAlive(row, col),
	))
}

// commit makes the staged generation current
func (g *Grid) commit() {
	g.cells, g.next = g.next, g.cells
	g.generation++
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col].IsAlive() {
				count++
			}
		}
	}
	return
}

// IsExtinct reports whether no cell is alive
func (g *Grid) IsExtinct() bool {
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col].IsAlive() {
				return false
			}
		}
	}
	return true
}

// Snapshot returns a copy of the current generation indexed [row][col]
func (g *Grid) Snapshot() [][]bool {
	out := make([][]bool, g.rows)
	for row := range g.rows {
		out[row] = make([]bool, g.cols)
		for col := range g.cols {
			out[row][col] = g.cells[row][col].IsAlive()
		}
	}
	return out
}

// Hash returns an MD5 digest of the current generation
func (g *Grid) Hash() string {
	h := md5.New()
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col].IsAlive() {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
