package editor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/model"
	"github.com/sheikhrachel/go-gol-editor/tools"
)

// startLoop runs l until the test ends and returns a channel closed when Run returns
func startLoop(t *testing.T, l *Loop) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()
	t.Cleanup(cancel)
	return cancel, done
}

func TestLoopDispatch(t *testing.T) {
	l := NewLoop(blinkerState())
	var (
		mu        sync.Mutex
		published []State
	)
	l.Subscribe(func(s State) {
		mu.Lock()
		defer mu.Unlock()
		published = append(published, s)
	})
	cancel, done := startLoop(t, l)

	ctx := context.Background()
	s, err := l.Dispatch(ctx, AdvanceGeneration{})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if s.Generation != 1 || l.Snapshot().Generation != 1 {
		t.Fatalf("generation = %d, want 1", s.Generation)
	}

	if _, err = l.Dispatch(ctx, SelectTool{Name: "nope"}); errors.Cause(err) != tools.ErrUnknownTool {
		t.Fatalf("err = %v, want ErrUnknownTool", err)
	}

	cancel()
	if err = <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(published) != 1 {
		t.Fatalf("published %d states, want 1 (failed actions are not published)", len(published))
	}
}

func TestLoopAutoAdvance(t *testing.T) {
	l := NewLoop(blinkerState())
	reached := make(chan State, 1)
	l.Subscribe(func(s State) {
		if s.Generation == 3 {
			reached <- s
		}
	})
	_, _ = startLoop(t, l)

	ctx := context.Background()
	if _, err := l.Dispatch(ctx, SetSpeed{Speed: MinSpeed}); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Dispatch(ctx, Start{}); err != nil {
		t.Fatal(err)
	}

	select {
	case s := <-reached:
		// odd generations of a blinker are vertical
		if !s.Grid.Alive(2, 1) || s.Grid.Alive(1, 2) {
			t.Fatalf("unexpected board at generation 3:\n%s", s.Grid)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timer never advanced to generation 3")
	}

	s, err := l.Dispatch(ctx, Stop{})
	if err != nil {
		t.Fatal(err)
	}
	stoppedAt := s.Generation

	time.Sleep(4 * MinSpeed)
	if g := l.Snapshot().Generation; g != stoppedAt {
		t.Fatalf("generation moved from %d to %d after stop", stoppedAt, g)
	}
}

func TestLoopStartsRunningState(t *testing.T) {
	s := blinkerState()
	s.Running, s.Speed = true, MinSpeed
	l := NewLoop(s)

	ticked := make(chan struct{}, 1)
	l.Subscribe(func(State) {
		select {
		case ticked <- struct{}{}:
		default:
		}
	})
	_, _ = startLoop(t, l)

	select {
	case <-ticked:
	case <-time.After(5 * time.Second):
		t.Fatal("a running start state should tick")
	}
}

func TestLoopStrokeThroughDispatch(t *testing.T) {
	l := NewLoop(NewState(model.EmptyGrid(10, 10)))
	_, _ = startLoop(t, l)
	ctx := context.Background()

	tool, err := tools.ByName(l.Snapshot().Tool)
	if err != nil {
		t.Fatal(err)
	}
	stroke, g := tool.Start(l.Snapshot().Grid, tools.Point{X: 1, Y: 1})
	if _, err = l.Dispatch(ctx, ReplaceGrid{Grid: g}); err != nil {
		t.Fatal(err)
	}
	for _, p := range []tools.Point{{X: 2, Y: 1}, {X: 3, Y: 1}} {
		if _, err = l.Dispatch(ctx, ReplaceGrid{Grid: stroke.Move(l.Snapshot().Grid, p)}); err != nil {
			t.Fatal(err)
		}
	}

	if n := l.Snapshot().Grid.CountLivingCells(); n != 3 {
		t.Fatalf("living = %d, want 3", n)
	}
}

func TestDispatchWithoutRunHonoursContext(t *testing.T) {
	l := NewLoop(blinkerState())
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	s, err := l.Dispatch(ctx, AdvanceGeneration{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if s.Generation != 0 {
		t.Fatal("action applied without a running loop")
	}
}
