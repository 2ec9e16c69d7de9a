package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-editor/rules"
)

// NextGeneration computes the successor of g under Conway's rules on a board
// with hard edges. g is not modified. Rows are split between workers, each
// cell only reads the previous generation so the split does not change the result.
func NextGeneration(g *Grid) *Grid {
	g.mustBeWellFormed()

	next := make([]uint8, len(g.cells))

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				row := y * g.width
				for x := range g.width {
					next[row+x] = rules.NextCell(g.cells[row+x], g.LiveNeighbors(x, y))
				}
			}
			return nil
		})
	}

	// workers never fail
	_ = eg.Wait()

	return &Grid{width: g.width, height: g.height, cells: next}
}

// NextGenerationBounded computes the same result as NextGeneration on a single
// goroutine, only visiting the living bounding box plus a one-cell margin.
func NextGenerationBounded(g *Grid) *Grid {
	g.mustBeWellFormed()

	next := &Grid{width: g.width, height: g.height, cells: make([]uint8, len(g.cells))}

	b, ok := g.Bounds()
	if !ok {
		return next
	}

	// Process only the active region + 1 margin
	minX := max(0, b.MinX-1)
	maxX := min(g.width-1, b.MaxX+1)
	minY := max(0, b.MinY-1)
	maxY := min(g.height-1, b.MaxY+1)

	for y := minY; y <= maxY; y++ {
		row := y * g.width
		for x := minX; x <= maxX; x++ {
			next.cells[row+x] = rules.NextCell(g.cells[row+x], g.LiveNeighbors(x, y))
		}
	}

	return next
}

// Advance picks the engine variant selected by configuration
func Advance(g *Grid, bounded bool) *Grid {
	if bounded {
		return NextGenerationBounded(g)
	}
	return NextGeneration(g)
}
