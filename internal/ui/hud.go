//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"topolife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the vitality/rule parameter panel to the right of the
// simulation view and applies +/- button clicks back to the simulation.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	controls    []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	offsetX     int

	pixel *ebiten.Image
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding = 12
	lineHeight   = 34
	buttonSize   = 22
	buttonGap    = 6
	controlsTop  = panelPadding + 26
)

// NewHUD constructs a HUD for the provided simulation and panel width.
// A zero width disables the panel entirely.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]controlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = controlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the cached parameter values and handles button clicks.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		return
	}
	h.refreshValues(provider.Parameters())
	h.handleInput()
}

// Draw paints the panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshValues(snapshot core.ParameterSnapshot) {
	byKey := map[string]core.Parameter{}
	for _, p := range snapshot.Params {
		byKey[p.Key] = p
	}
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := byKey[state.control.Key]
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = param.Value
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.floatValue = parsed
			state.value = strconv.FormatFloat(parsed, 'f', 2, 64)
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return
	}
	px := mx - h.offsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.adjust(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.adjust(state, 1)
			return
		}
	}
}

func (h *HUD) adjust(state *controlState, direction int) {
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		step := int(math.Round(state.control.Step))
		if step <= 0 {
			step = 1
		}
		target := state.intValue + direction*step
		if state.control.HasMin && target < int(math.Round(state.control.Min)) {
			return
		}
		if state.control.HasMax && target > int(math.Round(state.control.Max)) {
			return
		}
		if h.intSetter.SetIntParameter(state.control.Key, target) {
			state.intValue = target
			state.value = strconv.Itoa(target)
		}
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		step := state.control.Step
		if step <= 0 {
			step = 0.05
		}
		target := state.floatValue + float64(direction)*step
		if state.control.HasMin && target < state.control.Min {
			return
		}
		if state.control.HasMax && target > state.control.Max {
			return
		}
		if h.floatSetter.SetFloatParameter(state.control.Key, target) {
			state.floatValue = target
			state.value = strconv.FormatFloat(target, 'f', 2, 64)
		}
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + 14
	text.Draw(h.panel, "Vitality Controls", face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+28, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + 20
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)
		h.drawButton(state.minusRect, "-")
		h.drawButton(state.plusRect, "+")
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(54.0/255, 56.0/255, 64.0/255, 1)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (h *HUD) layoutControls() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
