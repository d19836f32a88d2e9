package render

import (
	"image/color"
	"math"
)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last entry. When the palette is
// empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	last := len(palette) - 1
	for i, c := range cells {
		base := i * 4
		if last < 0 {
			clear(buf[base : base+4])
			continue
		}
		col := palette[min(int(c), last)]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillMaskRGBA tints buf by the intensity of each mask entry. Intensities are
// clamped to [0, 1]; zero entries become fully transparent.
func fillMaskRGBA(buf []byte, mask []float32, tint color.RGBA, maxAlpha float64) {
	for i, m := range mask {
		base := i * 4
		intensity := math.Max(0, math.Min(1, float64(m)))
		if intensity == 0 {
			clear(buf[base : base+4])
			continue
		}
		buf[base+0] = tint.R
		buf[base+1] = tint.G
		buf[base+2] = tint.B
		buf[base+3] = uint8(math.Round(maxAlpha * intensity))
	}
}
