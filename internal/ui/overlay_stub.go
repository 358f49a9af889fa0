//go:build !ebiten

package ui

import (
	"topolife/internal/brush"
	"topolife/internal/core"
)

// Overlay is a no-op placeholder for headless builds.
type Overlay struct{}

// NewOverlay returns a no-op overlay.
func NewOverlay(core.Sim) *Overlay { return &Overlay{} }

// Update is a no-op in the headless build.
func (o *Overlay) Update() {}

// Draw is a no-op in the headless build.
func (o *Overlay) Draw(any, bool, brush.Shape, int) {}
