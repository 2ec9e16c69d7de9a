package model

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/rules"
)

const (
	// PatternWidth is the board width every catalog pattern is drawn for
	PatternWidth = 100
	// PatternHeight is the board height every catalog pattern is drawn for
	PatternHeight = 60
)

// ErrUnknownPattern is returned for names missing from the catalog
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a named preset board of PatternWidth x PatternHeight cells
type Pattern struct {
	Name  string
	Cells []uint8
}

// Grid builds the starting grid for the pattern
func (p Pattern) Grid() (*Grid, error) {
	g, err := NewGrid(PatternWidth, PatternHeight, p.Cells)
	if err != nil {
		return nil, errors.Wrapf(err, "[Pattern.Grid] pattern %q", p.Name)
	}
	return g, nil
}

// drawPattern places a plaintext drawing ('O' alive, anything else dead) with
// its top-left corner at (left, top)
func drawPattern(name string, left, top int, rows ...string) Pattern {
	cells := make([]uint8, PatternWidth*PatternHeight)
	for dy, row := range rows {
		for dx, ch := range row {
			if ch != 'O' {
				continue
			}
			x, y := left+dx, top+dy
			if x < 0 || x >= PatternWidth || y < 0 || y >= PatternHeight {
				panic("model: pattern " + name + " does not fit the board")
			}
			cells[x+y*PatternWidth] = rules.Alive
		}
	}
	return Pattern{Name: name, Cells: cells}
}

var catalog = map[string]Pattern{
	"gosperGliderGun": drawPattern("Gosper glider gun", 2, 2,
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................",
	),
	"glider": drawPattern("Glider", 2, 2,
		".O.",
		"..O",
		"OOO",
	),
	"blinker": drawPattern("Blinker", 49, 29,
		"OOO",
	),
	"pulsar": drawPattern("Pulsar", 43, 23,
		"..OOO...OOO..",
		".............",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		"..OOO...OOO..",
		".............",
		"..OOO...OOO..",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		".............",
		"..OOO...OOO..",
	),
	"pentadecathlon": drawPattern("Pentadecathlon", 45, 28,
		"..O....O..",
		"OO.OOOO.OO",
		"..O....O..",
	),
	"lightweightSpaceship": drawPattern("Lightweight spaceship", 2, 28,
		"O..O.",
		"....O",
		"O...O",
		".OOOO",
	),
	"rPentomino": drawPattern("R-pentomino", 49, 29,
		".OO",
		"OO.",
		".O.",
	),
	"acorn": drawPattern("Acorn", 46, 28,
		".O.....",
		"...O...",
		"OO..OOO",
	),
}

// PatternByName looks up a catalog pattern by its key
func PatternByName(key string) (Pattern, error) {
	p, ok := catalog[key]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[PatternByName] %q", key)
	}
	cells := make([]uint8, len(p.Cells))
	copy(cells, p.Cells)
	return Pattern{Name: p.Name, Cells: cells}, nil
}

// PatternKeys returns the catalog keys in sorted order
func PatternKeys() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
