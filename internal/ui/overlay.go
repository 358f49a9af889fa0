//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"topolife/internal/brush"
	"topolife/internal/core"
	"topolife/internal/kernel"
	"topolife/internal/rule"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type generationProvider interface {
	Generation() uint64
}

type ruleProvider interface {
	Rule() rule.Rule
}

type viewProvider interface {
	View() kernel.View
}

// Overlay draws the status readout in the corner of the simulation view.
type Overlay struct {
	sim     core.Sim
	visible bool
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, visible: true}
}

// Update toggles overlay visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
}

// Draw paints the status lines when the overlay is visible.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool, brushShape brush.Shape, brushRadius int) {
	if !o.visible {
		return
	}
	lines := []string{"engine: " + o.sim.Name()}
	if gp, ok := o.sim.(generationProvider); ok {
		lines = append(lines, fmt.Sprintf("gen: %d", gp.Generation()))
	}
	if rp, ok := o.sim.(ruleProvider); ok {
		lines = append(lines, "rule: "+rp.Rule().String()+" ("+rp.Rule().Neighborhood.String()+")")
	}
	if vp, ok := o.sim.(viewProvider); ok {
		v := vp.View()
		lines = append(lines, "boundary: "+v.Boundary.String())
		lines = append(lines, "vitality: "+v.Vitality.Mode.String())
	}
	lines = append(lines, fmt.Sprintf("brush: %s r=%d", brushShape, brushRadius))
	if paused {
		lines = append(lines, "paused (space resumes, n steps)")
	}

	face := basicfont.Face7x13
	fg := color.RGBA{R: 210, G: 255, B: 210, A: 255}
	y := 16
	for _, line := range lines {
		text.Draw(screen, line, face, 8, y, fg)
		y += 14
	}
}
