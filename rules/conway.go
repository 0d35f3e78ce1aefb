package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

B3/S23: a live cell with 2 or 3 live neighbors survives, a dead cell with exactly
3 live neighbors is born, every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
