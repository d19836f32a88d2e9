//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"dumbo-octopus/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBG     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	headerColor = color.RGBA{R: 150, G: 170, B: 210, A: 255}

	buttonBG     = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonFG     = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonIdleBG = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonIdleFG = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD is the side panel next to the grid: +/- rows for the int controls a
// simulation exposes, then its remaining parameters as statistics.
type HUD struct {
	sim    core.Sim
	width  int
	title  string
	rows   []controlRow
	setter core.IntParameterSetter
	snap   core.ParameterSnapshot
	origin int

	panel *ebiten.Image
	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), title: panelTitle(sim)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if p, ok := sim.(core.ParameterControlsProvider); ok && h.width > 0 {
		h.rows = layoutRows(p.ParameterControls(), h.width)
	}
	h.setter, _ = sim.(core.IntParameterSetter)
	return h
}

// Width reports the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update pulls a fresh parameter snapshot and applies a click on a +/-
// button. origin is the panel's x offset in the window. It reports whether a
// parameter changed, in which case the grid may have been resized.
func (h *HUD) Update(origin int) bool {
	if h == nil {
		return false
	}
	h.origin = origin
	p, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snap = core.ParameterSnapshot{}
		return false
	}
	h.snap = p.Parameters()
	syncRows(h.rows, h.snap)
	return h.click()
}

func (h *HUD) click() bool {
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	i, dir, ok := buttonAt(h.rows, image.Pt(x-h.origin, y))
	if !ok || !h.rows[i].canMove(dir) {
		return false
	}
	r := &h.rows[i]
	next, _ := r.ctrl.Adjust(r.value, dir)
	if !h.setter.SetIntParameter(r.ctrl.Key, next) {
		return false
	}
	r.value = next
	return true
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBG)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+titleBaseline, titleColor)
	for i := range h.rows {
		h.drawRow(&h.rows[i])
	}

	y := rowsTop + len(h.rows)*rowHeight + statsGap
	for _, line := range statLines(h.snap, h.rows) {
		if line.header {
			text.Draw(h.panel, line.label, face, panelPadding, y, headerColor)
		} else {
			text.Draw(h.panel, line.label, face, panelPadding, y, dimColor)
			w := text.BoundString(face, line.value).Dx()
			text.Draw(h.panel, line.value, face, h.width-panelPadding-w, y, labelColor)
		}
		y += statLineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawRow(r *controlRow) {
	face := basicfont.Face7x13
	y := r.top + labelBaseline
	text.Draw(h.panel, r.ctrl.Label, face, panelPadding, y, labelColor)

	value, fg := r.label(), labelColor
	if !r.known {
		fg = dimColor
	}
	w := text.BoundString(face, value).Dx()
	text.Draw(h.panel, value, face, r.minus.Min.X-buttonGap-w, y, fg)

	live := h.setter != nil
	h.drawButton(r.minus, "-", live && r.canMove(-1))
	h.drawButton(r.plus, "+", live && r.canMove(1))
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBG, buttonFG
	if !enabled {
		bg, fg = buttonIdleBG, buttonIdleFG
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()+b.Dy())/2
	text.Draw(h.panel, label, face, x, y, fg)
}
