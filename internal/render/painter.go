//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads cell states into a single reusable image and draws
// it scaled to the destination.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit shades the cells by vitality, uploads them, and draws the image.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, states uint32, alive, dying, dead color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	FillVitalityRGBA(gp.buf, cells, states, alive, dying, dead)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
