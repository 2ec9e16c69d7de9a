// Package editor holds the editor state and the single place it changes.
//
// Every change is an Action passed to Reduce, which returns a new State and
// leaves its input alone. Loop owns the current State and the auto-advance
// timer and feeds both pointer edits and timer ticks through Reduce.
package editor

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/model"
	"github.com/sheikhrachel/go-gol-editor/tools"
	"github.com/sheikhrachel/go-gol-editor/utils"
)

const (
	// DefaultSpeed is the auto-advance interval of a new editor
	DefaultSpeed = 180 * time.Millisecond
	// MinSpeed is the shortest auto-advance interval
	MinSpeed = 30 * time.Millisecond
)

// ErrNoGrid is returned for actions that need a grid when the state has none
var ErrNoGrid = errors.New("state has no grid")

// State is one snapshot of the editor
type State struct {
	Grid       *model.Grid
	Tool       string
	Running    bool
	Speed      time.Duration
	Generation int
	Bounded    bool
}

// NewState returns a stopped editor showing grid with the draw tool selected
func NewState(grid *model.Grid) State {
	return State{
		Grid:  grid,
		Tool:  "draw",
		Speed: DefaultSpeed,
	}
}

// StateFromConfig builds the start state described by cfg. The pattern
// "random" fills a cfg.Width x cfg.Height board.
func StateFromConfig(cfg utils.Config) (State, error) {
	s := NewState(nil)
	s.Speed = max(cfg.Speed, MinSpeed)
	s.Bounded = cfg.UseBoundedGrid

	var err error
	if cfg.Tool != "" {
		if s, err = Reduce(s, SelectTool{Name: cfg.Tool}); err != nil {
			return s, errors.Wrap(err, "[StateFromConfig] bad tool")
		}
	}

	if cfg.Pattern == "random" {
		s.Grid = model.EmptyGrid(cfg.Width, cfg.Height)
		s, err = Reduce(s, LoadRandom{Seed: cfg.Seed, Density: cfg.RandomDensity})
		return s, errors.Wrap(err, "[StateFromConfig] random board")
	}

	p, err := model.PatternByName(cfg.Pattern)
	if err != nil {
		return s, errors.Wrap(err, "[StateFromConfig] bad pattern")
	}
	s, err = Reduce(s, LoadPattern{Pattern: p})
	return s, errors.Wrap(err, "[StateFromConfig] pattern board")
}

// Action is one of the editor's state transitions
type Action interface {
	isAction()
}

type (
	// LoadPattern replaces the board with a catalog pattern and stops the run
	LoadPattern struct{ Pattern model.Pattern }
	// LoadRandom fills a board of the current size at random and stops the run.
	// Seed 0 seeds from the clock, Density 0 means model.RandomDensity.
	LoadRandom struct {
		Seed    int64
		Density float64
	}
	// ApplyPatches applies hand edits to the current board
	ApplyPatches struct{ Patches []model.CellPatch }
	// ReplaceGrid swaps in a grid produced by a tool stroke
	ReplaceGrid struct{ Grid *model.Grid }
	// AdvanceGeneration moves the board one generation forward
	AdvanceGeneration struct{}
	// SetSpeed sets the auto-advance interval
	SetSpeed struct{ Speed time.Duration }
	// ChangeSpeed adds Delta to the auto-advance interval
	ChangeSpeed struct{ Delta time.Duration }
	// ToggleRun starts a stopped editor and stops a running one
	ToggleRun struct{}
	// Start starts auto-advance
	Start struct{}
	// Stop stops auto-advance
	Stop struct{}
	// Clear kills every cell and stops the run
	Clear struct{}
	// SelectTool picks the editing tool by name
	SelectTool struct{ Name string }
)

func (LoadPattern) isAction()       {}
func (LoadRandom) isAction()        {}
func (ApplyPatches) isAction()      {}
func (ReplaceGrid) isAction()       {}
func (AdvanceGeneration) isAction() {}
func (SetSpeed) isAction()          {}
func (ChangeSpeed) isAction()       {}
func (ToggleRun) isAction()         {}
func (Start) isAction()             {}
func (Stop) isAction()              {}
func (Clear) isAction()             {}
func (SelectTool) isAction()        {}

// Reduce returns the state that follows s after a. On error s is returned unchanged.
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case LoadPattern:
		g, err := a.Pattern.Grid()
		if err != nil {
			return s, errors.Wrap(err, "[Reduce] load pattern")
		}
		s.Grid, s.Generation, s.Running = g, 0, false

	case LoadRandom:
		if s.Grid == nil {
			return s, errors.Wrap(ErrNoGrid, "[Reduce] load random")
		}
		density := a.Density
		if density == 0 {
			density = model.RandomDensity
		}
		s.Grid = model.RandomGridDensity(s.Grid.Width(), s.Grid.Height(), density, utils.NewRNG(a.Seed))
		s.Generation, s.Running = 0, false

	case ApplyPatches:
		if s.Grid == nil {
			return s, errors.Wrap(ErrNoGrid, "[Reduce] apply patches")
		}
		s.Grid = s.Grid.ApplyPatches(a.Patches)

	case ReplaceGrid:
		if a.Grid == nil {
			return s, errors.Wrap(ErrNoGrid, "[Reduce] replace grid")
		}
		s.Grid = a.Grid

	case AdvanceGeneration:
		if s.Grid == nil {
			return s, errors.Wrap(ErrNoGrid, "[Reduce] advance")
		}
		s.Grid = model.Advance(s.Grid, s.Bounded)
		s.Generation++

	case SetSpeed:
		s.Speed = max(a.Speed, MinSpeed)

	case ChangeSpeed:
		s.Speed = max(s.Speed+a.Delta, MinSpeed)

	case ToggleRun:
		s.Running = !s.Running

	case Start:
		s.Running = true

	case Stop:
		s.Running = false

	case Clear:
		if s.Grid == nil {
			return s, errors.Wrap(ErrNoGrid, "[Reduce] clear")
		}
		s.Grid = model.EmptyGrid(s.Grid.Width(), s.Grid.Height())
		s.Generation, s.Running = 0, false

	case SelectTool:
		if _, err := tools.ByName(a.Name); err != nil {
			return s, errors.Wrap(err, "[Reduce] select tool")
		}
		s.Tool = a.Name

	default:
		return s, errors.Errorf("[Reduce] unhandled action %T", a)
	}
	return s, nil
}
