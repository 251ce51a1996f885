package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"time"

	"torlife/internal/view"
	"torlife/pkg/life"

	"github.com/cheggaaa/pb/v3"
	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"
	"github.com/integrii/flaggy"
)

func main() {
	defaults := life.DefaultConfig()
	width := defaults.Width
	height := defaults.Height
	seed := defaults.Seed
	pattern := defaults.Pattern
	generations := 100
	interval := 50 * time.Millisecond
	interactive := false

	names := make([]string, 0, len(life.Patterns()))
	for name := range life.Patterns() {
		names = append(names, name)
	}
	sort.Strings(names)

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&width, "x", "width", "width of the board in cells")
	flaggy.Int(&height, "y", "height", "height of the board in cells")
	flaggy.String(&pattern, "p", "pattern", "seed pattern ["+strings.Join(names, "|")+"]")
	flaggy.Int64(&seed, "", "seed", "seed for the random pattern")
	flaggy.Int(&generations, "g", "generations", "generations to run, 0 for unbounded")
	flaggy.Duration(&interval, "i", "interval", "delay between generations in interactive mode, for example 150ms")
	flaggy.Bool(&interactive, "n", "interactive", "start the interactive terminal UI")
	flaggy.Parse()

	if _, ok := life.Patterns()[pattern]; !ok {
		flaggy.ShowHelpAndExit("unknown pattern " + pattern)
	}

	cfg := life.FromMap(map[string]string{
		"w":       strconv.Itoa(width),
		"h":       strconv.Itoa(height),
		"seed":    strconv.FormatInt(seed, 10),
		"pattern": pattern,
	})

	universe := life.NewFromConfig(cfg)

	if interactive {
		view.NewTermUI(universe, cfg.Pattern, cfg.Seed, interval).Start()
		return
	}

	console := view.NewConsole()
	console.Start(universe, cfg.Pattern, generations)

	if generations > 0 {
		runBounded(universe, generations)
	} else {
		runUnbounded(universe)
	}

	console.Finish(universe)
}

// runBounded advances a fixed number of generations behind a progress bar.
func runBounded(u *life.Universe, generations int) {
	bar := pb.StartNew(generations)
	for i := 0; i < generations; i++ {
		u.Tick()
		bar.Increment()
	}
	bar.Finish()
}

// runUnbounded evolves until interrupted, showing a spinner with the
// current generation.
func runUnbounded(u *life.Universe) {
	w := wow.New(os.Stdout, spin.Get(spin.Dots), " evolving")
	w.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	for {
		select {
		case <-sig:
			w.PersistWith(spin.Spinner{Frames: []string{"✓"}}, fmt.Sprintf(" stopped at generation %d", u.Generation()))
			return
		default:
			u.Tick()
			if u.Generation()%100 == 0 {
				w.Text(fmt.Sprintf(" evolving, generation %d", u.Generation()))
			}
		}
	}
}
