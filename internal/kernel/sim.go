package kernel

import (
	"fmt"
	"strconv"

	"topolife/internal/core"
	"topolife/internal/rule"
	pkgcore "topolife/pkg/core"
)

// Simulation owns one session's ping-pong grid pair and its current
// rule and view. A step reads cur, exclusively writes nxt, then swaps,
// so no cell write is ever observed by another cell's read within the
// same generation.
type Simulation struct {
	engine Engine

	cur *core.Grid
	nxt *core.Grid

	rule rule.Rule
	view View
	gen  uint64
}

// New creates a simulation session with Conway defaults and the given
// step engine. Grids are allocated once here and reused for the life of
// the session.
func New(w, h int, engine Engine) *Simulation {
	return &Simulation{
		engine: engine,
		cur:    core.NewGrid(w, h),
		nxt:    core.NewGrid(w, h),
		rule:   rule.Default(),
		view:   DefaultView(),
	}
}

// Name identifies the simulation by its step engine.
func (s *Simulation) Name() string { return s.engine.Name() }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size { return core.Size{W: s.cur.W, H: s.cur.H} }

// Cells exposes the current-generation buffer, read-only by convention.
// The renderer and the spectral aggregator read it once per frame.
func (s *Simulation) Cells() []uint8 { return s.cur.Cells() }

// Generation returns the number of completed steps since the last reset.
func (s *Simulation) Generation() uint64 { return s.gen }

// Rule returns the active rule.
func (s *Simulation) Rule() rule.Rule { return s.rule }

// View returns the active boundary and vitality settings.
func (s *Simulation) View() View { return s.view }

// SetRule replaces the rule wholesale. The state count is clamped to
// [2, MaxStates] and existing cells beyond the new chain are pulled back
// into it.
func (s *Simulation) SetRule(r rule.Rule) {
	if r.States < 2 {
		r.States = 2
	}
	if r.States > rule.MaxStates {
		r.States = rule.MaxStates
	}
	s.rule = r
	top := uint8(r.States - 1)
	for i, c := range s.cur.Cells() {
		if c > top {
			s.cur.Cells()[i] = top
		}
	}
}

// SetView replaces the boundary and vitality settings wholesale.
func (s *Simulation) SetView(v View) { s.view = v }

// Step advances the simulation by one generation.
func (s *Simulation) Step() {
	s.engine.Step(s.cur.Cells(), s.nxt.Cells(), s.cur.W, s.cur.H, s.rule, &s.view)
	s.cur, s.nxt = s.nxt, s.cur
	s.gen++
}

// Clear kills every cell.
func (s *Simulation) Clear() {
	s.cur.Clear()
	s.gen = 0
}

// Randomize seeds the grid with alive cells at the given density using an
// explicit deterministic generator, so runs are reproducible.
func (s *Simulation) Randomize(seed int64, density float64) {
	rng := pkgcore.NewRNG(seed).Source()
	pkgcore.FillAlive(rng, s.cur.Cells(), density)
	s.gen = 0
}

// Reset randomizes the board using the provided seed.
func (s *Simulation) Reset(seed int64) {
	s.Randomize(seed, defaultDensity)
}

const defaultDensity = 0.35

// SetCell writes a single cell, reporting false when the coordinate is
// out of range. States beyond the decay chain are clamped.
func (s *Simulation) SetCell(x, y int, state uint8) bool {
	if x < 0 || x >= s.cur.W || y < 0 || y >= s.cur.H {
		return false
	}
	if top := uint8(s.rule.States - 1); state > top {
		state = top
	}
	s.cur.Set(x, y, state)
	return true
}

// CellData copies the current generation out for bulk consumers.
func (s *Simulation) CellData() []uint8 {
	out := make([]uint8, len(s.cur.Cells()))
	copy(out, s.cur.Cells())
	return out
}

// SetCellData bulk-writes the grid from a buffer of the exact grid length.
func (s *Simulation) SetCellData(data []uint8) error {
	cells := s.cur.Cells()
	if len(data) != len(cells) {
		return fmt.Errorf("kernel: cell data length %d does not match grid %dx%d", len(data), s.cur.W, s.cur.H)
	}
	top := uint8(s.rule.States - 1)
	for i, v := range data {
		if v > top {
			v = top
		}
		cells[i] = v
	}
	return nil
}

// Parameters exposes the live-tunable values to the HUD.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	v := s.view.Vitality
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "states", Label: "States", Type: core.ParamTypeInt, Value: strconv.Itoa(int(s.rule.States))},
		{Key: "threshold", Label: "Threshold", Type: core.ParamTypeFloat, Value: formatParam(v.Threshold)},
		{Key: "ghost_factor", Label: "Ghost factor", Type: core.ParamTypeFloat, Value: formatParam(v.GhostFactor)},
		{Key: "sigmoid_sharpness", Label: "Sharpness", Type: core.ParamTypeFloat, Value: formatParam(v.SigmoidSharpness)},
		{Key: "decay_power", Label: "Decay power", Type: core.ParamTypeFloat, Value: formatParam(v.DecayPower)},
	}}
}

func formatParam(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// ParameterControls describes the HUD-adjustable controls.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "states", Label: "States", Type: core.ParamTypeInt, Step: 1, Min: 2, Max: 64, HasMin: true, HasMax: true},
		{Key: "threshold", Label: "Threshold", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "ghost_factor", Label: "Ghost factor", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 2, HasMin: true, HasMax: true},
		{Key: "sigmoid_sharpness", Label: "Sharpness", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 40, HasMin: true, HasMax: true},
		{Key: "decay_power", Label: "Decay power", Type: core.ParamTypeFloat, Step: 0.25, Min: 0.25, Max: 8, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a HUD adjustment to an integer parameter.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	if key != "states" || value < 2 || value > rule.MaxStates {
		return false
	}
	r := s.rule
	r.States = uint32(value)
	s.SetRule(r)
	return true
}

// SetFloatParameter applies a HUD adjustment to a vitality parameter.
func (s *Simulation) SetFloatParameter(key string, value float64) bool {
	v := s.view
	switch key {
	case "threshold":
		v.Vitality.Threshold = value
	case "ghost_factor":
		v.Vitality.GhostFactor = value
	case "sigmoid_sharpness":
		v.Vitality.SigmoidSharpness = value
	case "decay_power":
		v.Vitality.DecayPower = value
	default:
		return false
	}
	s.SetView(v)
	return true
}
