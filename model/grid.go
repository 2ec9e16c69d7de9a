package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/rules"
	"github.com/sheikhrachel/go-gol-editor/utils"
)

// RandomDensity is the share of living cells in a RandomGrid
const RandomDensity = 0.3

// ErrMalformedGrid is the cause of every grid precondition violation
var ErrMalformedGrid = errors.New("malformed grid")

// Grid is an immutable snapshot of the board. Cells are stored row-major,
// the cell at (x, y) lives at index x + y*width.
type Grid struct {
	width  int
	height int
	cells  []uint8
}

// Bounds is the inclusive bounding box of the living cells of a grid
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
}

// NewGrid creates a grid from a copy of cells
func NewGrid(width, height int, cells []uint8) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrMalformedGrid, "[NewGrid] dimensions must be positive, got %dx%d", width, height)
	}
	if len(cells) != width*height {
		return nil, errors.Wrapf(ErrMalformedGrid, "[NewGrid] %dx%d grid needs %d cells, got %d",
			width, height, width*height, len(cells))
	}
	for i, c := range cells {
		if c != rules.Dead && c != rules.Alive {
			return nil, errors.Wrapf(ErrMalformedGrid, "[NewGrid] cell %d has value %d, want 0 or 1", i, c)
		}
	}

	copied := make([]uint8, len(cells))
	copy(copied, cells)
	return &Grid{width: width, height: height, cells: copied}, nil
}

// MustNewGrid is NewGrid for trusted callers, it panics on malformed input
func MustNewGrid(width, height int, cells []uint8) *Grid {
	g, err := NewGrid(width, height, cells)
	if err != nil {
		panic(err)
	}
	return g
}

// EmptyGrid returns a grid with every cell dead
func EmptyGrid(width, height int) *Grid {
	return MustNewGrid(width, height, make([]uint8, width*height))
}

// RandomGrid returns a grid where each cell is alive with probability RandomDensity.
// A nil rng is seeded from the clock.
func RandomGrid(width, height int, rng *rand.Rand) *Grid {
	return RandomGridDensity(width, height, RandomDensity, rng)
}

// RandomGridDensity is RandomGrid with a caller-chosen density
func RandomGridDensity(width, height int, density float64, rng *rand.Rand) *Grid {
	if rng == nil {
		rng = utils.NewRNG(0)
	}
	g := EmptyGrid(width, height)
	for i := range g.cells {
		if rng.Float64() < density {
			g.cells[i] = rules.Alive
		}
	}
	return g
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// Cells returns a copy of the row-major cell values
func (g *Grid) Cells() []uint8 {
	out := make([]uint8, len(g.cells))
	copy(out, g.cells)
	return out
}

// Contains reports whether (x, y) is on the board
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the state of a cell. It panics outside the board.
func (g *Grid) At(x, y int) uint8 {
	if !g.Contains(x, y) {
		panic(fmt.Sprintf("model: cell (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
	return g.cells[x+y*g.width]
}

// Alive reports whether the cell at (x, y) is alive
func (g *Grid) Alive(x, y int) bool {
	return g.At(x, y) == rules.Alive
}

// ApplyPatches returns a copy of the grid with every patch applied in order,
// so the last patch for a cell wins. Patches outside the board are skipped,
// a patch state other than 0 or 1 panics.
func (g *Grid) ApplyPatches(patches []CellPatch) *Grid {
	next := &Grid{width: g.width, height: g.height, cells: g.Cells()}
	for _, p := range patches {
		if p.State != rules.Dead && p.State != rules.Alive {
			panic(errors.Wrapf(ErrMalformedGrid, "patch at (%d,%d) has state %d", p.X, p.Y, p.State))
		}
		if !g.Contains(p.X, p.Y) {
			continue
		}
		next.cells[p.X+p.Y*g.width] = p.State
	}
	return next
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		count += int(c)
	}
	return
}

// Hash returns an MD5 hash of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	h.Write(g.cells)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Bounds returns the bounding box of living cells, ok is false for a dead board
func (g *Grid) Bounds() (b Bounds, ok bool) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[x+y*g.width] != rules.Alive {
				continue
			}
			if !ok {
				b = Bounds{MinX: x, MaxX: x, MinY: y, MaxY: y}
				ok = true
				continue
			}
			b.MinX = min(b.MinX, x)
			b.MaxX = max(b.MaxX, x)
			b.MinY = min(b.MinY, y)
			b.MaxY = max(b.MaxY, y)
		}
	}
	return b, ok
}

// String renders the grid as rows of 'O' (alive) and '.' (dead)
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[x+y*g.width] == rules.Alive {
				buf = append(buf, 'O')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// mustBeWellFormed panics when the grid breaks its invariants. Grids built by
// this package never do, a zero Grid{} does.
func (g *Grid) mustBeWellFormed() {
	if g == nil {
		panic(errors.Wrap(ErrMalformedGrid, "nil grid"))
	}
	if g.width <= 0 || g.height <= 0 || len(g.cells) != g.width*g.height {
		panic(errors.Wrapf(ErrMalformedGrid, "%dx%d grid holds %d cells", g.width, g.height, len(g.cells)))
	}
}
