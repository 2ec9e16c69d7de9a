package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/editor"
	"github.com/sheikhrachel/go-gol-editor/model"
	"github.com/sheikhrachel/go-gol-editor/tools"
	"github.com/sheikhrachel/go-gol-editor/utils"
)

// parsePoint reads a board cell written as "x,y"
func parsePoint(s string) (tools.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return tools.Point{}, errors.Errorf("[parsePoint] want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return tools.Point{}, errors.Wrapf(err, "[parsePoint] bad x in %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return tools.Point{}, errors.Wrapf(err, "[parsePoint] bad y in %q", s)
	}
	return tools.Point{X: x, Y: y}, nil
}

// applyGesture runs one pointer gesture with the selected tool, from the
// first point through every following one, and commits the result
func applyGesture(state editor.State, points []tools.Point) (editor.State, error) {
	if len(points) == 0 {
		return state, nil
	}

	tool, err := tools.ByName(state.Tool)
	if err != nil {
		return state, errors.Wrap(err, "[applyGesture] failed to pick tool")
	}

	stroke, grid := tool.Start(state.Grid, points[0])
	for _, p := range points[1:] {
		grid = stroke.Move(grid, p)
	}
	return editor.Reduce(state, editor.ReplaceGrid{Grid: grid})
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, state editor.State) {
	fmt.Printf("Pattern: %s | Tool: %s | Bounded: %v | Speed: %v\n",
		config.Pattern, state.Tool, state.Bounded, state.Speed)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		state.Grid.Width(), state.Grid.Height(), state.Grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// displayGameStatus shows the current game status
func displayGameStatus(state editor.State, status string, stats *utils.Stats) {
	livingCells := state.Grid.CountLivingCells()
	density := float64(livingCells) / float64(state.Grid.Width()*state.Grid.Height()) * 100

	boundingInfo := ""
	if b, ok := state.Grid.Bounds(); ok && state.Bounded {
		boundingInfo = fmt.Sprintf(" | Bounding box: %d cells", (b.MaxX-b.MinX+1)*(b.MaxY-b.MinY+1))
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s%s\n",
		state.Generation, livingCells, density, status, boundingInfo)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Println()
}

// checkStopConditions determines if the run should end
func checkStopConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}

// watcher follows the published states, renders them and decides when to stop
type watcher struct {
	config   utils.Config
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	history  *editor.History
	render   bool

	stagnantCount int
	lastFrameTime time.Time
	stopReason    string
	stop          func()
}

func newWatcher(config utils.Config, renderer *model.TerminalRenderer, render bool, stop func()) *watcher {
	return &watcher{
		config:        config,
		renderer:      renderer,
		stats:         utils.NewStats(),
		history:       editor.NewHistory(5),
		render:        render,
		lastFrameTime: time.Now(),
		stop:          stop,
	}
}

// observe is subscribed to the editor loop
func (w *watcher) observe(state editor.State) {
	if w.stopReason != "" {
		return
	}

	now := time.Now()
	livingCells := state.Grid.CountLivingCells()
	w.stats.Update(state.Generation, livingCells, now.Sub(w.lastFrameTime))
	w.lastFrameTime = now

	status := "Active"
	if w.history.Record(state.Grid) {
		w.stagnantCount++
		status = fmt.Sprintf("Stagnant (%d)", w.stagnantCount)
	} else {
		w.stagnantCount = 0
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	if w.render {
		if err := w.renderer.Clear(); err != nil {
			fmt.Println("Error clearing terminal:", err)
		}
		displayGameStatus(state, status, w.stats)
		if err := w.renderer.Display(state.Grid); err != nil {
			fmt.Println("Error drawing grid:", err)
		}
	}

	if done, reason := checkStopConditions(livingCells, w.stagnantCount, state.Generation, w.config); done {
		w.stopReason = reason
		w.stop()
	}
}
