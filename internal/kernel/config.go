package kernel

import (
	"strconv"

	"topolife/internal/core"
	"topolife/internal/neighborhood"
	"topolife/internal/rule"
	"topolife/internal/topology"
	"topolife/internal/vitality"
)

// Config controls a simulation session built from flag-style settings.
// Enum fields carry the public string ids; unknown ids fall back to the
// defaults rather than erroring, matching the lenient rule parsing.
type Config struct {
	Width  int
	Height int

	Seed int64

	Rule         string
	Boundary     string
	Neighborhood string
	Vitality     string

	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        256,
		Height:       256,
		Seed:         1337,
		Rule:         "B3/S23",
		Boundary:     topology.Torus.String(),
		Neighborhood: neighborhood.Moore.String(),
		Vitality:     vitality.None.String(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["boundary"]; ok && v != "" {
		c.Boundary = v
	}
	if v, ok := cfg["neighborhood"]; ok && v != "" {
		c.Neighborhood = v
	}
	if v, ok := cfg["vitality"]; ok && v != "" {
		c.Vitality = v
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}

// Build constructs a Simulation from the config and engine. A rule string
// that fails to parse falls back to B3/S23; unknown enum ids keep their
// defaults.
func Build(c Config, engine Engine) *Simulation {
	s := New(c.Width, c.Height, engine)

	r, ok := rule.Parse(c.Rule)
	if !ok {
		r = rule.Default()
	}
	if shape, known := neighborhood.FromID(c.Neighborhood); known {
		r.Neighborhood = shape
	}
	s.SetRule(r)

	v := DefaultView()
	if b, known := topology.FromID(c.Boundary); known {
		v.Boundary = b
	}
	if m, known := vitality.FromID(c.Vitality); known {
		v.Vitality.Mode = m
	}
	s.SetView(v)
	return s
}

func init() {
	core.Register("serial", func(cfg map[string]string) core.Sim {
		return Build(FromMap(cfg), SerialEngine{})
	})
	core.Register("parallel", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return Build(c, ParallelEngine{Workers: c.Workers})
	})
}
