package editor

import (
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/model"
	"github.com/sheikhrachel/go-gol-editor/tools"
	"github.com/sheikhrachel/go-gol-editor/utils"
)

func blinkerState() State {
	g := model.EmptyGrid(5, 5).ApplyPatches([]model.CellPatch{
		model.AlivePatch(1, 2), model.AlivePatch(2, 2), model.AlivePatch(3, 2),
	})
	return NewState(g)
}

func mustReduce(t *testing.T, s State, a Action) State {
	t.Helper()
	next, err := Reduce(s, a)
	if err != nil {
		t.Fatalf("Reduce(%T): %v", a, err)
	}
	return next
}

func TestReduceAdvanceGeneration(t *testing.T) {
	s := blinkerState()
	next := mustReduce(t, s, AdvanceGeneration{})

	if next.Generation != 1 {
		t.Fatalf("generation = %d, want 1", next.Generation)
	}
	if next.Grid.Alive(1, 2) || !next.Grid.Alive(2, 1) {
		t.Fatalf("blinker did not flip:\n%s", next.Grid)
	}
	if s.Generation != 0 || !s.Grid.Alive(1, 2) {
		t.Fatal("input state was modified")
	}

	s.Bounded = true
	if bounded := mustReduce(t, s, AdvanceGeneration{}); !bounded.Grid.Equal(next.Grid) {
		t.Fatal("bounded engine gave a different result")
	}
}

func TestReduceLoadPatternStopsRun(t *testing.T) {
	s := blinkerState()
	s.Running, s.Generation = true, 12

	p, err := model.PatternByName("glider")
	if err != nil {
		t.Fatal(err)
	}
	next := mustReduce(t, s, LoadPattern{Pattern: p})

	if next.Running || next.Generation != 0 {
		t.Fatalf("running=%v generation=%d, want stopped at 0", next.Running, next.Generation)
	}
	if next.Grid.Width() != model.PatternWidth || next.Grid.CountLivingCells() != 5 {
		t.Fatal("pattern not loaded")
	}

	_, err = Reduce(s, LoadPattern{Pattern: model.Pattern{Name: "broken", Cells: []uint8{1}}})
	if errors.Cause(err) != model.ErrMalformedGrid {
		t.Fatalf("err = %v, want ErrMalformedGrid", err)
	}
}

func TestReduceLoadRandom(t *testing.T) {
	s := blinkerState()
	s.Running = true

	a := mustReduce(t, s, LoadRandom{Seed: 9})
	b := mustReduce(t, s, LoadRandom{Seed: 9})
	if !a.Grid.Equal(b.Grid) {
		t.Fatal("same seed gave different boards")
	}
	if a.Running || a.Grid.Width() != 5 || a.Grid.Height() != 5 {
		t.Fatal("random board should keep the size and stop the run")
	}

	full := mustReduce(t, s, LoadRandom{Seed: 1, Density: 1})
	if full.Grid.CountLivingCells() != 25 {
		t.Fatal("density 1 should fill the board")
	}
}

func TestReducePatchesAndReplace(t *testing.T) {
	s := blinkerState()
	next := mustReduce(t, s, ApplyPatches{Patches: []model.CellPatch{model.DeadPatch(2, 2), model.AlivePatch(0, 0)}})
	if next.Grid.Alive(2, 2) || !next.Grid.Alive(0, 0) {
		t.Fatalf("patches not applied:\n%s", next.Grid)
	}

	stroke, g := tools.Line.Start(next.Grid, tools.Point{X: 0, Y: 4})
	g = stroke.Move(g, tools.Point{X: 4, Y: 4})
	replaced := mustReduce(t, next, ReplaceGrid{Grid: g})
	if replaced.Grid != g {
		t.Fatal("grid not replaced")
	}

	if _, err := Reduce(s, ReplaceGrid{}); errors.Cause(err) != ErrNoGrid {
		t.Fatalf("err = %v, want ErrNoGrid", err)
	}
}

func TestReduceRunControls(t *testing.T) {
	s := blinkerState()
	s = mustReduce(t, s, ToggleRun{})
	if !s.Running {
		t.Fatal("toggle should start")
	}
	s = mustReduce(t, s, ToggleRun{})
	if s.Running {
		t.Fatal("toggle should stop")
	}
	if s = mustReduce(t, s, Start{}); !s.Running {
		t.Fatal("start")
	}
	if s = mustReduce(t, s, Stop{}); s.Running {
		t.Fatal("stop")
	}
}

func TestReduceSpeed(t *testing.T) {
	s := blinkerState()
	if s = mustReduce(t, s, ChangeSpeed{Delta: 30 * time.Millisecond}); s.Speed != 210*time.Millisecond {
		t.Fatalf("speed = %v, want 210ms", s.Speed)
	}
	if s = mustReduce(t, s, SetSpeed{Speed: 60 * time.Millisecond}); s.Speed != 60*time.Millisecond {
		t.Fatalf("speed = %v, want 60ms", s.Speed)
	}
	if s = mustReduce(t, s, ChangeSpeed{Delta: -90 * time.Millisecond}); s.Speed != MinSpeed {
		t.Fatalf("speed = %v, want clamp to %v", s.Speed, MinSpeed)
	}
	if s = mustReduce(t, s, SetSpeed{}); s.Speed != MinSpeed {
		t.Fatalf("speed = %v, want clamp to %v", s.Speed, MinSpeed)
	}
}

func TestReduceClear(t *testing.T) {
	s := blinkerState()
	s.Running, s.Generation = true, 4
	s = mustReduce(t, s, Clear{})
	if s.Running || s.Generation != 0 || s.Grid.CountLivingCells() != 0 {
		t.Fatalf("clear left %+v", s)
	}
	if s.Grid.Width() != 5 || s.Grid.Height() != 5 {
		t.Fatal("clear changed the board size")
	}
}

func TestReduceSelectTool(t *testing.T) {
	s := mustReduce(t, blinkerState(), SelectTool{Name: "circle"})
	if s.Tool != "circle" {
		t.Fatalf("tool = %q", s.Tool)
	}
	next, err := Reduce(s, SelectTool{Name: "bucket"})
	if errors.Cause(err) != tools.ErrUnknownTool {
		t.Fatalf("err = %v, want ErrUnknownTool", err)
	}
	if next.Tool != "circle" {
		t.Fatal("failed action changed the state")
	}
}

func TestReduceWithoutGrid(t *testing.T) {
	for _, a := range []Action{AdvanceGeneration{}, Clear{}, LoadRandom{}, ApplyPatches{}} {
		if _, err := Reduce(NewState(nil), a); errors.Cause(err) != ErrNoGrid {
			t.Fatalf("%T: err = %v, want ErrNoGrid", a, err)
		}
	}
	if _, err := Reduce(NewState(nil), nil); err == nil {
		t.Fatal("nil action should fail")
	}
}

func TestStateFromConfig(t *testing.T) {
	cfg := utils.DefaultConfig()
	s, err := StateFromConfig(cfg)
	if err != nil {
		t.Fatalf("StateFromConfig: %v", err)
	}
	if s.Grid.CountLivingCells() != 36 || s.Speed != cfg.Speed || s.Tool != "draw" {
		t.Fatalf("unexpected start state %+v", s)
	}

	cfg.Pattern, cfg.Width, cfg.Height, cfg.Seed = "random", 12, 8, 5
	cfg.UseBoundedGrid = true
	s, err = StateFromConfig(cfg)
	if err != nil {
		t.Fatalf("StateFromConfig random: %v", err)
	}
	if s.Grid.Width() != 12 || s.Grid.Height() != 8 || !s.Bounded {
		t.Fatalf("unexpected random state %+v", s)
	}

	cfg.Pattern = "missing"
	if _, err = StateFromConfig(cfg); errors.Cause(err) != model.ErrUnknownPattern {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}

	cfg.Pattern, cfg.Tool = "glider", "spray"
	if _, err = StateFromConfig(cfg); errors.Cause(err) != tools.ErrUnknownTool {
		t.Fatalf("err = %v, want ErrUnknownTool", err)
	}
}
