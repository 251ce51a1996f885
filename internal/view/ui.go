package view

import (
	"fmt"
	"log"
	"strings"
	"time"

	"torlife/pkg/core"
	"torlife/pkg/life"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

const (
	boardView  = "board"
	statusView = "status"
	helpView   = "help"

	statusWidth = 26
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// TermUI is an interactive gocui front end around a Universe.
//
// Every universe mutation funnels through the pacing goroutine, so the engine
// keeps a single logical caller even though gocui dispatches key events on
// its own loop.
type TermUI struct {
	u *life.Universe
	g *gocui.Gui
	k []keyBinding

	pattern string
	seed    int64
	tps     int

	running bool
	cmds    chan func()
	done    chan struct{}

	liveFiller string
	deadFiller string
}

// tpsForInterval converts a per-generation delay into a tick rate. Intervals
// longer than a second still mean one generation per second at most, not the
// pacer's 60/s fallback.
func tpsForInterval(interval time.Duration) int {
	if interval <= 0 {
		return 10
	}
	tps := int(time.Second / interval)
	if tps < 1 {
		return 1
	}
	return tps
}

// NewTermUI builds the UI, its views and keybindings.
func NewTermUI(u *life.Universe, pattern string, seed int64, interval time.Duration) *TermUI {
	tps := tpsForInterval(interval)

	t := &TermUI{
		u:          u,
		pattern:    pattern,
		seed:       seed,
		tps:        tps,
		cmds:       make(chan func(), 16),
		done:       make(chan struct{}),
		liveFiller: aurora.Green("█").String(),
		deadFiller: "░",
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	t.g.Mouse = true

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "exit", t.cmdQuit, ""},
		{'n', "N", "next generation", t.cmdStep, ""},
		{'r', "R", "run", t.cmdRun, ""},
		{'s', "S", "stop", t.cmdStop, ""},
		{'c', "C", "clear", t.cmdClear, ""},
		{'w', "W", "random board", t.cmdRandom, ""},
		{'d', "D", "reseed pattern", t.cmdReseed, ""},
		{gocui.MouseLeft, "MOUSE", "toggle cell", t.cmdToggle, boardView},
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings()

	return t
}

func (t *TermUI) initKeyBindings() {
	for _, kb := range t.k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			log.Panicln(err)
		}
	}
}

// Start runs the UI until the user exits.
func (t *TermUI) Start() {
	go t.loop()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	close(t.done)
	t.g.Close()
}

// loop owns the universe: it executes queued commands and paces ticks while
// the simulation is running.
func (t *TermUI) loop() {
	pace := core.NewPacer(t.tps)
	for {
		select {
		case <-t.done:
			return
		case fn := <-t.cmds:
			fn()
			t.redraw()
			continue
		default:
		}
		if t.running && pace.Ready() {
			t.u.Tick()
			t.redraw()
		}
		time.Sleep(time.Millisecond)
	}
}

// enqueue hands a mutation to the loop goroutine. Commands are dropped when
// the queue is full rather than blocking the event loop.
func (t *TermUI) enqueue(fn func()) {
	select {
	case t.cmds <- fn:
	default:
	}
}

// requestRedraw triggers a repaint from the loop goroutine.
func (t *TermUI) requestRedraw() {
	t.enqueue(func() {})
}

// redraw snapshots the board and status as strings, then posts them to gocui.
// Runs on the loop goroutine only.
func (t *TermUI) redraw() {
	board := t.renderBoard()
	status := t.renderStatus()
	t.g.Update(func(g *gocui.Gui) error {
		if v, err := g.View(boardView); err == nil {
			v.Clear()
			fmt.Fprint(v, board)
		}
		if v, err := g.View(statusView); err == nil {
			v.Clear()
			fmt.Fprint(v, status)
		}
		return nil
	})
}

func (t *TermUI) renderBoard() string {
	var b strings.Builder
	cells := t.u.Cells()
	w := t.u.Width()
	for row := 0; row < t.u.Height(); row++ {
		if row != 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < w; col++ {
			if cells[row*w+col] == life.Dead {
				b.WriteString(t.deadFiller)
			} else {
				b.WriteString(t.liveFiller)
			}
		}
	}
	return b.String()
}

func (t *TermUI) renderStatus() string {
	mode := aurora.Colorize("waiting", aurora.BlueFg).String()
	if t.running {
		mode = aurora.Colorize("running", aurora.CyanFg).String()
	}
	var b strings.Builder
	fmt.Fprintln(&b, t.renderProp("Dimension", "%v x %v", t.u.Width(), t.u.Height()))
	fmt.Fprintln(&b, t.renderProp("Generation", "%v", t.u.Generation()))
	fmt.Fprintln(&b, t.renderProp("Live cells", "%v", t.u.Population()))
	fmt.Fprintln(&b, t.renderProp("Speed", "%v gen/s", t.tps))
	fmt.Fprintln(&b, t.renderProp("Mode", "%v", mode))
	return b.String()
}

func (t *TermUI) renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func (t *TermUI) helpLine() string {
	var b strings.Builder
	b.WriteString("KEYBINDINGS: ")
	for i, kb := range t.k {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(kb.name).String())
		b.WriteString(": ")
		b.WriteString(kb.descr)
	}
	return b.String()
}

func (t *TermUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	created := false

	if v, err := g.SetView(statusView, 0, 0, statusWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		created = true
	}
	if v, err := g.SetView(boardView, statusWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Board"
		created = true
	}
	if v, err := g.SetView(helpView, -1, maxY-2, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		fmt.Fprint(v, t.helpLine())
	}

	if created {
		t.requestRedraw()
	}
	return nil
}

func (t *TermUI) cmdQuit(*gocui.View) error {
	return gocui.ErrQuit
}

func (t *TermUI) cmdStep(*gocui.View) error {
	t.enqueue(func() { t.u.Tick() })
	return nil
}

func (t *TermUI) cmdRun(*gocui.View) error {
	t.enqueue(func() { t.running = true })
	return nil
}

func (t *TermUI) cmdStop(*gocui.View) error {
	t.enqueue(func() { t.running = false })
	return nil
}

func (t *TermUI) cmdClear(*gocui.View) error {
	t.enqueue(func() {
		t.running = false
		t.u.Clear()
	})
	return nil
}

func (t *TermUI) cmdRandom(*gocui.View) error {
	seed := time.Now().UnixNano()
	t.enqueue(func() { t.u.Reset(seed) })
	return nil
}

func (t *TermUI) cmdReseed(*gocui.View) error {
	t.enqueue(func() {
		t.running = false
		t.u.Seed(t.pattern, t.seed)
	})
	return nil
}

// cmdToggle flips the cell under the mouse cursor.
func (t *TermUI) cmdToggle(v *gocui.View) error {
	if v == nil {
		return nil
	}
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	row, col := cy+oy, cx+ox
	if row < 0 || row >= t.u.Height() || col < 0 || col >= t.u.Width() {
		return nil
	}
	t.enqueue(func() { t.u.ToggleCell(row, col) })
	return nil
}
