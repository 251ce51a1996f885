package view

import (
	"fmt"
	"strings"
	"time"

	"torlife/pkg/life"

	"github.com/logrusorgru/aurora"
)

// Console reports headless run progress and renders boards to stdout.
type Console struct {
	start time.Time
}

// NewConsole returns a console reporter.
func NewConsole() *Console { return &Console{} }

// Start prints the run configuration and records the start time.
func (c *Console) Start(u *life.Universe, pattern string, generations int) {
	c.start = time.Now()
	fmt.Println("Running configuration:")
	fmt.Printf("  Dimension: %v x %v\n", u.Width(), u.Height())
	fmt.Printf("  Pattern: %v\n", pattern)
	if generations > 0 {
		fmt.Printf("  Generations: %v\n", generations)
	} else {
		fmt.Println("  Generations: until interrupted")
	}
}

// Finish prints the final board and a run summary.
func (c *Console) Finish(u *life.Universe) {
	total := time.Since(c.start).Round(time.Millisecond)
	fmt.Println()
	fmt.Print(Board(u))
	fmt.Printf("Finished: generation %v, %v alive, total time %v\n",
		aurora.Cyan(u.Generation()), aurora.Green(u.Population()), total)
}

// Board renders the universe one colored glyph per cell, one line per row.
func Board(u *life.Universe) string {
	var b strings.Builder
	live := aurora.Green("█").String()
	cells := u.Cells()
	w := u.Width()
	for row := 0; row < u.Height(); row++ {
		for col := 0; col < w; col++ {
			if cells[row*w+col] == life.Dead {
				b.WriteString("░")
			} else {
				b.WriteString(live)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
