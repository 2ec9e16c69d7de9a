package model

// neighborOffsets are the eight (dx, dy) steps around a cell
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// NeighborIndexes returns the flat indexes of the cells adjacent to (x, y) on a
// width x height board. Offsets that leave the board are skipped, so corners
// have 3 neighbors, edges 5 and interior cells 8. There is no wraparound.
func NeighborIndexes(width, height, x, y int) []int {
	indexes := make([]int, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if nx < 0 || nx >= width || ny < 0 || ny >= height {
			continue
		}
		indexes = append(indexes, nx+ny*width)
	}
	return indexes
}

// LiveNeighbors counts living neighbors of (x, y) with clamped bounds
func (g *Grid) LiveNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		row := ny * g.width
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			count += int(g.cells[row+nx])
		}
	}

	return count
}
