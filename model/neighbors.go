package model

// neighborOffsets lists the 8 compass directions as (row, col) deltas
var neighborOffsets = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// View is a read-only borrow of one generation of a grid.
//
// The compute phase of Advance only ever sees the current generation through a
// View, so it cannot observe or mutate cells staged for the next generation.
type View struct {
	rows  int
	cols  int
	cells [][]Cell
}

// Dimensions returns the number of rows and columns of the viewed grid
func (v View) Dimensions() (rows, cols int) {
	return v.rows, v.cols
}

// Contains reports whether (row, col) lies inside the viewed grid
func (v View) Contains(row, col int) bool {
	return row >= 0 && row < v.rows && col >= 0 && col < v.cols
}

// IsAlive returns the state of a cell, positions outside the grid are dead
func (v View) IsAlive(row, col int) bool {
	if !v.Contains(row, col) {
		return false
	}
	return v.cells[row][col].IsAlive()
}

// Neighbors returns the in-bounds positions adjacent to (row, col).
// The topology does not wrap: corners have 3 neighbors, edges 5 and interior cells 8.
func (v View) Neighbors(row, col int) []Position {
	neighbors := make([]Position, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		if nr, nc := row+off.Row, col+off.Col; v.Contains(nr, nc) {
			neighbors = append(neighbors, Position{Row: nr, Col: nc})
		}
	}
	return neighbors
}

// CountAliveNeighbors counts living cells among the neighbors of (row, col)
func (v View) CountAliveNeighbors(row, col int) int {
	count := 0
	for _, off := range neighborOffsets {
		nr, nc := row+off.Row, col+off.Col
		if !v.Contains(nr, nc) {
			continue
		}
		if v.cells[nr][nc].IsAlive() {
			count++
		}
	}
	return count
}
