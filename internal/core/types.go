package core

import (
	"sort"

	"sparse-life/pkg/life"
)

// Sim is what the hosts (window, terminal runner, sweep tool) drive once per
// tick. Implementations own the authoritative live set.
type Sim interface {
	Name() string
	Reset(seed int64)
	Toggle()
	Paused() bool
	Tick() (life.Transition, bool)
	Live() life.LiveSet
	Generation() uint64
	Parameters() ParameterSnapshot
}

// Options carries the startup constants a Sim is built from.
type Options struct {
	Engine life.Config
	Seed   life.SeedConfig
}

// Factory constructs a Sim from startup options.
type Factory func(opts Options) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists registered simulations alphabetically.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
