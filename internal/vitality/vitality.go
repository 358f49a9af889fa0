// Package vitality converts raw cell states into fractional neighbor
// contributions. A cell's vitality is its normalized aliveness: 1 when
// alive, 0 when dead, and a decreasing fraction while it walks the decay
// chain of a generations rule.
package vitality

import (
	"math"

	"topolife/internal/core"
)

// Mode identifies one of the six vitality weighting schemes.
type Mode uint8

const (
	None Mode = iota
	Threshold
	Ghost
	Sigmoid
	Decay
	Curve
)

var modeIDs = []string{"none", "threshold", "ghost", "sigmoid", "decay", "curve"}

// IDs returns the stable string ids in index order.
func IDs() []string { return modeIDs }

// String returns the stable string id for the mode.
func (m Mode) String() string { return core.MustID(modeIDs, int(m)) }

// FromID resolves a string id leniently, reporting whether it is known.
func FromID(id string) (Mode, bool) {
	i, ok := core.LookupIndex(modeIDs, id)
	return Mode(i), ok
}

// MustFromID resolves a string id, panicking on unknown ids.
func MustFromID(id string) Mode {
	return Mode(core.MustIndex(modeIDs, id))
}

// Spec holds the weighting parameters for one step configuration. It is
// replaced wholesale when settings change and never mutated mid-step.
type Spec struct {
	Mode             Mode
	Threshold        float64
	GhostFactor      float64
	SigmoidSharpness float64
	DecayPower       float64
	CurveSamples     [SampleCount]float64
}

// DefaultSpec returns a Spec with the weighting parameters the UI starts
// from. The curve defaults to the identity ramp.
func DefaultSpec() Spec {
	return Spec{
		Mode:             None,
		Threshold:        0.5,
		GhostFactor:      0.5,
		SigmoidSharpness: 10,
		DecayPower:       2,
		CurveSamples: Sample([]Point{
			{X: 0, Y: 0},
			{X: 1, Y: 1},
		}),
	}
}

// Vitality returns the normalized aliveness of a state: 1 for alive, 0 for
// dead, and (states-state)/(states-1) along the decay chain.
func Vitality(state, states uint32) float64 {
	switch state {
	case 0:
		return 0
	case 1:
		return 1
	}
	if states < 2 {
		return 0
	}
	return float64(states-state) / float64(states-1)
}

// Contribution converts a raw neighbor state into its fractional neighbor
// count. Individual terms may exceed 1 in edge configurations; callers
// clamp the summed total, not each term.
func Contribution(state uint32, spec *Spec, states uint32) float64 {
	switch spec.Mode {
	case None:
		if state == 1 {
			return 1
		}
		return 0
	case Threshold:
		if Vitality(state, states) >= spec.Threshold {
			return 1
		}
		return 0
	case Ghost:
		switch state {
		case 1:
			return 1
		case 0:
			return 0
		}
		return Vitality(state, states) * spec.GhostFactor
	case Sigmoid:
		// Every state goes through the sigmoid, alive and dead included.
		v := Vitality(state, states)
		return 1 / (1 + math.Exp(-(v-spec.Threshold)*spec.SigmoidSharpness))
	case Decay:
		switch state {
		case 1:
			return 1
		case 0:
			return 0
		}
		return math.Pow(Vitality(state, states), spec.DecayPower) * spec.GhostFactor
	case Curve:
		switch state {
		case 1:
			return 1
		case 0:
			return 0
		}
		pos := Vitality(state, states) * float64(SampleCount-1)
		i := int(pos)
		if i >= SampleCount-1 {
			return spec.CurveSamples[SampleCount-1]
		}
		frac := pos - float64(i)
		return spec.CurveSamples[i]*(1-frac) + spec.CurveSamples[i+1]*frac
	default:
		return 0
	}
}
