// Package audio folds the visible grid into a frequency spectrum buffer
// for the synthesis pipeline. Only the aggregation lives here; everything
// downstream of the spectral buffer is a separate subsystem.
package audio

import (
	"topolife/internal/core"
	"topolife/internal/vitality"
)

// SpectrumMode identifies the timbre preset the synthesizer applies to the
// aggregated spectrum. The kernel never reads it; it rides along with the
// buffer under the same string-id convention as the kernel enums.
type SpectrumMode uint8

const (
	Bright SpectrumMode = iota
	Warm
	Organ
	Pure
	Pulse
	Noise
)

var modeIDs = []string{"bright", "warm", "organ", "pure", "pulse", "noise"}

// IDs returns the stable string ids in index order.
func IDs() []string { return modeIDs }

// String returns the stable string id for the mode.
func (m SpectrumMode) String() string { return core.MustID(modeIDs, int(m)) }

// FromID resolves a string id leniently, reporting whether it is known.
func FromID(id string) (SpectrumMode, bool) {
	i, ok := core.LookupIndex(modeIDs, id)
	return SpectrumMode(i), ok
}

// MustFromID resolves a string id, panicking on unknown ids.
func MustFromID(id string) SpectrumMode {
	return SpectrumMode(core.MustIndex(modeIDs, id))
}

// Aggregator folds grid columns into frequency bins. Gain is an explicit
// knob rather than a baked-in constant; it defaults to 1.
type Aggregator struct {
	Bins int
	Gain float64
	Mode SpectrumMode
}

// NewAggregator returns an aggregator with unit gain.
func NewAggregator(bins int, mode SpectrumMode) *Aggregator {
	if bins <= 0 {
		bins = 1
	}
	return &Aggregator{Bins: bins, Gain: 1, Mode: mode}
}

// Aggregate sums the vitality of every cell into its column's bin,
// normalized by column height so a fully alive column contributes its
// column share regardless of grid size. The grid is read once and never
// written.
func (a *Aggregator) Aggregate(cells []uint8, w, h int, states uint32) []float64 {
	out := make([]float64, a.Bins)
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return out
	}
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			s := cells[row+x]
			if s == 0 {
				continue
			}
			bin := x * a.Bins / w
			out[bin] += vitality.Vitality(uint32(s), states)
		}
	}
	scale := a.Gain / float64(h)
	for i := range out {
		out[i] *= scale
	}
	return out
}
