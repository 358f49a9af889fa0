package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Engine       string
	Rule         string
	Boundary     string
	Neighborhood string
	Vitality     string

	Width   int
	Height  int
	Scale   int
	TPS     int
	Seed    int64
	Density float64
	Workers int

	Brush       string
	BrushRadius int

	PanelWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Engine:       "parallel",
		Rule:         "B3/S23",
		Boundary:     "torus",
		Neighborhood: "moore",
		Vitality:     "none",
		Width:        256,
		Height:       256,
		Scale:        3,
		TPS:          30,
		Seed:         42,
		Density:      0.35,
		Brush:        "circle",
		BrushRadius:  1,
		PanelWidth:   220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Engine, "engine", c.Engine, "step engine to run (serial, parallel)")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule string, e.g. B3/S23 or B2/S/C3")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "boundary topology id")
	fs.StringVar(&c.Neighborhood, "neighborhood", c.Neighborhood, "neighborhood shape id")
	fs.StringVar(&c.Vitality, "vitality", c.Vitality, "vitality weighting mode id")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Float64Var(&c.Density, "density", c.Density, "alive density for randomize")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel worker count (0 = NumCPU)")
	fs.StringVar(&c.Brush, "brush", c.Brush, "brush shape id for painting")
	fs.IntVar(&c.BrushRadius, "brush-radius", c.BrushRadius, "brush radius in cells")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "HUD panel width in pixels (0 hides it)")
}

// Map converts the config into the key/value form the engine registry
// factories consume.
func (c *Config) Map() map[string]string {
	return map[string]string{
		"w":            itoa(c.Width),
		"h":            itoa(c.Height),
		"seed":         itoa64(c.Seed),
		"rule":         c.Rule,
		"boundary":     c.Boundary,
		"neighborhood": c.Neighborhood,
		"vitality":     c.Vitality,
		"workers":      itoa(c.Workers),
	}
}

func itoa(v int) string     { return strconv.Itoa(v) }
func itoa64(v int64) string { return strconv.FormatInt(v, 10) }
