//go:build ebiten

package app

import (
	"image/color"
	"time"

	"torlife/internal/render"
	"torlife/internal/ui"
	"torlife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// resizeStep is how many cells each bracket keypress adds or removes per axis.
const resizeStep = 16

// Game adapts a life.Universe to the ebiten.Game interface.
type Game struct {
	universe *life.Universe
	painter  *render.GridPainter
	overlay  *ui.Overlay

	onColor  color.Color
	offColor color.Color

	pattern  string
	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game around the provided universe.
func New(u *life.Universe, pattern string, scale int, seed int64) *Game {
	return &Game{
		universe: u,
		painter:  render.NewGridPainter(u.Width(), u.Height()),
		overlay:  ui.NewOverlay(),
		onColor:  color.White,
		offColor: color.Black,
		pattern:  pattern,
		scale:    scale,
		seed:     seed,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.universe.Seed(g.pattern, g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.universe.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.universe.Clear()
		g.paused = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.overlay.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.resizeBy(-resizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.resizeBy(resizeStep)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		col, row := x/g.scale, y/g.scale
		if row >= 0 && row < g.universe.Height() && col >= 0 && col < g.universe.Width() {
			g.universe.ToggleCell(row, col)
		}
	}

	if !g.paused || g.tickOnce {
		g.universe.Tick()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) resizeBy(delta int) {
	g.universe.Resize(g.universe.Width()+delta, g.universe.Height()+delta)
	g.painter.Resize(g.universe.Width(), g.universe.Height())
}

// Draw renders the current generation and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.universe.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, g.universe.Generation(), g.universe.Population(), g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.universe.Width() * g.scale, g.universe.Height() * g.scale
}
