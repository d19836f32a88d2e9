package octopus

import "image/color"

var octopusPalette = buildOctopusPalette()

// Palette maps energy levels to colors. Level 0, a freshly flashed octopus,
// is the brightest entry; charging octopuses warm from deep blue towards
// orange as they approach the threshold.
func (s *Swarm) Palette() []color.RGBA {
	return octopusPalette
}

func buildOctopusPalette() []color.RGBA {
	cold := color.NRGBA{R: 18, G: 24, B: 64, A: 255}
	hot := color.NRGBA{R: 240, G: 140, B: 48, A: 255}
	palette := make([]color.RGBA, FlashThreshold+1)
	palette[0] = color.RGBA{R: 255, G: 250, B: 220, A: 255}
	for level := 1; level <= FlashThreshold; level++ {
		t := float64(level-1) / float64(FlashThreshold-1)
		palette[level] = toRGBA(blendColors(cold, hot, t))
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}
