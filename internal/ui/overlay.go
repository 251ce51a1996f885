//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Overlay draws a small status readout in the top-left screen corner.
type Overlay struct {
	visible bool
}

// NewOverlay constructs an overlay, visible by default.
func NewOverlay() *Overlay { return &Overlay{visible: true} }

// Toggle flips overlay visibility.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Draw prints the status line onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image, generation, population int, paused bool) {
	if !o.visible {
		return
	}
	state := "running"
	if paused {
		state = "paused"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("gen %d  pop %d  %s", generation, population, state), 4, 4)
}
