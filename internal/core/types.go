package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
// The kernel package provides one Sim per step engine (serial, parallel).
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var engines = map[string]Factory{}

// Register adds a step-engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available step-engine factories.
func Engines() map[string]Factory {
	return engines
}
