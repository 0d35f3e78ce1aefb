package model

// Cell is the life state of a single grid position
type Cell bool

const (
	Dead  Cell = false
	Alive Cell = true
)

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return bool(c)
}

// Position addresses a cell by row and column
type Position struct {
	Row int
	Col int
}

func cellOf(alive bool) Cell {
	return Cell(alive)
}
