// Package render converts cell states into RGBA pixel data. It reads the
// current grid buffer once per frame and never writes it.
package render

import (
	"image/color"

	"topolife/internal/vitality"
)

// FillBinaryRGBA converts cells into RGBA pixels, painting state 1 with on
// and everything else with off.
func FillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == 1 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// FillVitalityRGBA shades each cell by its vitality: alive cells get the
// alive color, dead cells the dead color, and decaying cells fade from
// dying toward dead as their vitality drops.
func FillVitalityRGBA(buf []byte, cells []uint8, states uint32, alive, dying, dead color.RGBA) {
	for i, c := range cells {
		base := i * 4
		var col color.RGBA
		switch c {
		case 0:
			col = dead
		case 1:
			col = alive
		default:
			col = lerpRGBA(dead, dying, vitality.Vitality(uint32(c), states))
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette.
// When the palette is empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
