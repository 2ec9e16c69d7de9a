package tools

import (
	"math"

	"github.com/sheikhrachel/go-gol-editor/model"
)

// Point is a board cell under the pointer
type Point struct {
	X, Y int
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// floorDiv divides rounding toward negative infinity, b must be positive
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// LinePatches returns live patches for every cell on the line from start to
// end. The longer axis is stepped one cell at a time (horizontal on ties) and
// the other coordinate is interpolated and rounded down.
func LinePatches(start, end Point) []model.CellPatch {
	dx, dy := end.X-start.X, end.Y-start.Y

	if abs(dx) >= abs(dy) {
		if dx < 0 {
			start, dx, dy = end, -dx, -dy
		}
		patches := make([]model.CellPatch, 0, dx+1)
		for i := 0; i <= dx; i++ {
			y := start.Y
			if dx != 0 {
				y += floorDiv(i*dy, dx)
			}
			patches = append(patches, model.AlivePatch(start.X+i, y))
		}
		return patches
	}

	if dy < 0 {
		start, dx, dy = end, -dx, -dy
	}
	patches := make([]model.CellPatch, 0, dy+1)
	for i := 0; i <= dy; i++ {
		patches = append(patches, model.AlivePatch(start.X+floorDiv(i*dx, dy), start.Y+i))
	}
	return patches
}

// RectanglePatches returns live patches filling the rectangle with corners a
// and b, both inclusive
func RectanglePatches(a, b Point) []model.CellPatch {
	minX, maxX := min(a.X, b.X), max(a.X, b.X)
	minY, maxY := min(a.Y, b.Y), max(a.Y, b.Y)

	patches := make([]model.CellPatch, 0, (maxX-minX+1)*(maxY-minY+1))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			patches = append(patches, model.AlivePatch(x, y))
		}
	}
	return patches
}

// CirclePatches returns live patches for the cells strictly closer to center
// than edge is. Columns outside [0, width) are left out.
func CirclePatches(center, edge Point, width int) []model.CellPatch {
	radius := math.Hypot(float64(edge.X-center.X), float64(edge.Y-center.Y))
	reach := int(math.Ceil(radius))

	var patches []model.CellPatch
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			if math.Hypot(float64(dx), float64(dy)) >= radius {
				continue
			}
			x := center.X + dx
			if x < 0 || x >= width {
				continue
			}
			patches = append(patches, model.AlivePatch(x, center.Y+dy))
		}
	}
	return patches
}
