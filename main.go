package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/editor"
	"github.com/sheikhrachel/go-gol-editor/model"
	"github.com/sheikhrachel/go-gol-editor/tools"
	"github.com/sheikhrachel/go-gol-editor/utils"
)

// pointList collects repeated -at flags
type pointList []tools.Point

func (p *pointList) String() string { return fmt.Sprint(*p) }

func (p *pointList) Set(s string) error {
	pt, err := parsePoint(s)
	if err != nil {
		return err
	}
	*p = append(*p, pt)
	return nil
}

func main() {
	var (
		configPath  = flag.String("config", "config.json", "path to a JSON config file")
		pattern     = flag.String("pattern", "", "catalog pattern or \"random\"")
		generations = flag.Int("generations", 0, "stop after this many generations, 0 runs forever")
		seed        = flag.Int64("seed", 0, "random board seed, 0 seeds from the clock")
		bounded     = flag.Bool("bounded", false, "only evaluate the living region")
		tool        = flag.String("tool", "", "editing tool for the -at gesture")
		quiet       = flag.Bool("quiet", false, "skip drawing the board")
		list        = flag.Bool("list", false, "list patterns and tools, then exit")
		gesture     pointList
	)
	flag.Var(&gesture, "at", "gesture point x,y (repeat: first is the pointer down, the rest are moves)")
	flag.Parse()

	if *list {
		fmt.Println("Patterns:", model.PatternKeys(), "+ random")
		fmt.Println("Tools:", tools.Names())
		return
	}

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Fatalf("%+v", err)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pattern":
			config.Pattern = *pattern
		case "generations":
			config.MaxGenerations = *generations
		case "seed":
			config.Seed = *seed
		case "bounded":
			config.UseBoundedGrid = *bounded
		case "tool":
			config.Tool = *tool
		}
	})
	if err = config.Validate(); err != nil {
		log.Fatalf("%+v", err)
	}

	state, err := editor.StateFromConfig(config)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if state, err = applyGesture(state, gesture); err != nil {
		log.Fatalf("%+v", err)
	}

	displayGameInfo(config, state)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := editor.NewLoop(state)
	w := newWatcher(config, &model.TerminalRenderer{}, !*quiet, cancel)
	loop.Subscribe(w.observe)

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	if _, err = loop.Dispatch(ctx, editor.Start{}); err != nil && ctx.Err() == nil {
		log.Fatalf("%+v", err)
	}
	if err = <-done; err != nil {
		log.Fatalf("%+v", err)
	}

	final := loop.Snapshot()
	if w.stopReason != "" {
		fmt.Printf("\n🏁 Stopped: %s\n", w.stopReason)
	} else {
		fmt.Println("\n🛑 Shutting down gracefully...")
	}
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		final.Generation, w.stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		w.stats.GenerationsPerSecond, w.stats.AveragePopulation)
}
