// Package tools turns pointer gestures into grid edits.
//
// A gesture starts with Tool.Start on the grid shown when the pointer went
// down and continues with Stroke.Move for every new pointer cell. Point tools
// paint onto the latest grid; shape tools redraw the whole shape onto the
// grid taken at the start of the gesture, so earlier previews disappear.
package tools

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/model"
	"github.com/sheikhrachel/go-gol-editor/rules"
)

// ErrUnknownTool is returned by ByName for unregistered names
var ErrUnknownTool = errors.New("unknown tool")

// Tool begins a gesture
type Tool interface {
	// Start returns the stroke for a gesture beginning at at and the grid
	// after its first cell is applied
	Start(origin *model.Grid, at Point) (Stroke, *model.Grid)
}

// Stroke is a gesture in progress
type Stroke interface {
	// Move extends the gesture to the cell to and returns the new grid
	Move(current *model.Grid, to Point) *model.Grid
}

// PointTool paints single cells with a fixed state
type PointTool struct {
	State uint8
}

var (
	// Draw makes cells alive
	Draw Tool = PointTool{State: rules.Alive}
	// Erase makes cells dead
	Erase Tool = PointTool{State: rules.Dead}
	// Line draws a straight line from the gesture start
	Line Tool = ShapeTool{Shape: func(start, end Point, _ *model.Grid) []model.CellPatch {
		return LinePatches(start, end)
	}}
	// Rectangle fills the rectangle spanned from the gesture start
	Rectangle Tool = ShapeTool{Shape: func(start, end Point, _ *model.Grid) []model.CellPatch {
		return RectanglePatches(start, end)
	}}
	// Circle fills a disc centered on the gesture start
	Circle Tool = ShapeTool{Shape: func(start, end Point, g *model.Grid) []model.CellPatch {
		return CirclePatches(start, end, g.Width())
	}}
)

var registry = map[string]Tool{
	"draw":      Draw,
	"erase":     Erase,
	"line":      Line,
	"rectangle": Rectangle,
	"circle":    Circle,
}

// ByName returns a registered tool
func ByName(name string) (Tool, error) {
	t, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTool, "[ByName] %q", name)
	}
	return t, nil
}

// Names returns the registered tool names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Start paints the first cell
func (t PointTool) Start(origin *model.Grid, at Point) (Stroke, *model.Grid) {
	s := &pointStroke{state: t.State, last: at}
	return s, origin.ApplyPatches([]model.CellPatch{{X: at.X, Y: at.Y, State: t.State}})
}

type pointStroke struct {
	state uint8
	last  Point
}

func (s *pointStroke) Move(current *model.Grid, to Point) *model.Grid {
	if to == s.last {
		return current
	}
	s.last = to
	return current.ApplyPatches([]model.CellPatch{{X: to.X, Y: to.Y, State: s.state}})
}

// ShapeTool redraws Shape from the gesture start on every move
type ShapeTool struct {
	Shape func(start, end Point, origin *model.Grid) []model.CellPatch
}

// Start keeps origin and draws the shape for a pointer that has not moved yet
func (t ShapeTool) Start(origin *model.Grid, at Point) (Stroke, *model.Grid) {
	s := &shapeStroke{shape: t.Shape, origin: origin, start: at}
	return s, s.Move(origin, at)
}

type shapeStroke struct {
	shape  func(start, end Point, origin *model.Grid) []model.CellPatch
	origin *model.Grid
	start  Point
}

// Move ignores current, the shape is always drawn over the grid the gesture began on
func (s *shapeStroke) Move(_ *model.Grid, to Point) *model.Grid {
	return s.origin.ApplyPatches(s.shape(s.start, to, s.origin))
}
