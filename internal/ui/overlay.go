//go:build ebiten

package ui

import (
	"image/color"

	"dumbo-octopus/internal/core"
	"dumbo-octopus/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type flashMaskProvider interface {
	FlashMask() []float32
}

// Overlay highlights the cells that flashed during the last step. Key 1
// toggles it.
type Overlay struct {
	sim     core.Sim
	scale   int
	show    bool
	painter *render.GridPainter
	tint    color.RGBA
}

// NewOverlay constructs an overlay for sim drawn at the given scale.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale, tint: color.RGBA{R: 255, G: 255, B: 255}}
}

// Update handles the overlay toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the flash highlight onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(flashMaskProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.painter == nil {
		o.painter = render.NewGridPainter(size.W, size.H)
	} else if w, h := o.painter.Size(); w != size.W || h != size.H {
		o.painter = render.NewGridPainter(size.W, size.H)
	}
	o.painter.BlitMask(screen, provider.FlashMask(), o.tint, o.scale)
}
