package rules

const (
	// Dead is the value of a dead cell.
	Dead uint8 = 0
	// Alive is the value of a living cell.
	Alive uint8 = 1
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A living cell survives with 2 or 3 living neighbors, a dead cell is born with exactly 3.
Every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// NextCell is ApplyConwayRules over the 0/1 cell encoding
func NextCell(cell uint8, neighbors int) uint8 {
	if ApplyConwayRules(neighbors, cell == Alive) {
		return Alive
	}
	return Dead
}
