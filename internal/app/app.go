//go:build ebiten

package app

import (
	"image/color"
	"time"

	"topolife/internal/brush"
	"topolife/internal/core"
	"topolife/internal/render"
	"topolife/internal/rule"
	"topolife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// cellPainter is the optional bulk-write surface a sim can expose for
// mouse painting.
type cellPainter interface {
	SetCell(x, y int, state uint8) bool
}

type clearer interface {
	Clear()
}

type ruleProvider interface {
	Rule() rule.Rule
}

// Game adapts a kernel simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep

	aliveColor color.RGBA
	dyingColor color.RGBA
	deadColor  color.RGBA

	brushShape  brush.Shape
	brushRadius int

	scale      int
	panelWidth int
	paused     bool
	tickOnce   bool
	seed       int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	shape, ok := brush.FromID(cfg.Brush)
	if !ok {
		shape = brush.Circle
	}
	g := &Game{
		sim:         sim,
		painter:     render.NewGridPainter(size.W, size.H),
		overlay:     ui.NewOverlay(sim),
		hud:         ui.NewHUD(sim, cfg.PanelWidth),
		timer:       core.NewFixedStep(cfg.TPS),
		aliveColor:  color.RGBA{R: 235, G: 235, B: 245, A: 255},
		dyingColor:  color.RGBA{R: 80, G: 140, B: 220, A: 255},
		deadColor:   color.RGBA{R: 8, G: 8, B: 12, A: 255},
		brushShape:  shape,
		brushRadius: cfg.BrushRadius,
		scale:       cfg.Scale,
		panelWidth:  cfg.PanelWidth,
		seed:        cfg.Seed,
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if c, ok := g.sim.(clearer); ok {
			c.Clear()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.brushShape = brush.Shape((int(g.brushShape) + 1) % len(brush.IDs()))
	}
	if _, wheel := ebiten.Wheel(); wheel != 0 {
		g.brushRadius += int(wheel)
		if g.brushRadius < 0 {
			g.brushRadius = 0
		}
		if g.brushRadius > 16 {
			g.brushRadius = 16
		}
	}

	g.handlePainting()

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.sim.Size().W * g.scale)
	}

	if (!g.paused && g.timer.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// handlePainting stamps the brush at the cursor: left paints alive cells,
// right erases.
func (g *Game) handlePainting() {
	painter, ok := g.sim.(cellPainter)
	if !ok {
		return
	}
	var state uint8
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		state = 1
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		state = 0
	default:
		return
	}
	mx, my := ebiten.CursorPosition()
	size := g.sim.Size()
	cx, cy := mx/g.scale, my/g.scale
	if cx < 0 || cx >= size.W || cy < 0 || cy >= size.H {
		return
	}
	for _, off := range g.brushShape.Offsets(g.brushRadius) {
		painter.SetCell(cx+off.DX, cy+off.DY, state)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	states := uint32(2)
	if rp, ok := g.sim.(ruleProvider); ok {
		states = rp.Rule().States
	}
	g.painter.Blit(screen, g.sim.Cells(), states, g.aliveColor, g.dyingColor, g.deadColor, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.paused, g.brushShape, g.brushRadius)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size, leaving room for the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.panelWidth, s.H * g.scale
}
