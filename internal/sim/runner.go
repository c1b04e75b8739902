// Package sim owns the authoritative simulation state and the
// Uninitialized/Running/Paused state machine that gates when the engine runs.
package sim

import (
	"context"
	"math"

	"github.com/pkg/errors"

	"sparse-life/internal/core"
	"sparse-life/pkg/life"
)

// Name is the registry key of the sparse Life simulation.
const Name = "life"

// Runner drives an Engine one tick at a time. Renderers mirror Live(); they
// never mutate it.
type Runner struct {
	engine  *life.Engine
	seedCfg life.SeedConfig
	seed    int64

	phase Phase
	state life.State
	stats Stats
}

// New builds a Runner in the Uninitialized phase.
func New(opts core.Options) (*Runner, error) {
	engine, err := life.NewEngine(opts.Engine)
	if err != nil {
		return nil, errors.Wrap(err, "[sim.New]")
	}
	if opts.Seed.Dim < 0 {
		return nil, errors.Errorf("[sim.New] negative seed dimension %d", opts.Seed.Dim)
	}
	return &Runner{engine: engine, seedCfg: opts.Seed, state: life.NewState(nil)}, nil
}

// Name returns the simulation identifier.
func (r *Runner) Name() string { return Name }

// Seed populates the world and starts it. It is a no-op unless the runner is
// Uninitialized.
func (r *Runner) Seed(seed int64) {
	if r.phase != Uninitialized {
		return
	}
	r.seed = seed
	r.state = life.NewState(life.Seed(r.seedCfg, r.engine.Pitch(), seed))
	r.stats = newStats(r.state.Live.Len())
	r.phase = Running
}

// Reset clears the world, returns to Uninitialized and reseeds.
func (r *Runner) Reset(seed int64) {
	r.phase = Uninitialized
	r.state = life.NewState(nil)
	r.stats = Stats{}
	r.Seed(seed)
}

// Toggle flips between Running and Paused.
func (r *Runner) Toggle() {
	switch r.phase {
	case Running:
		r.phase = Paused
	case Paused:
		r.phase = Running
	}
}

// Paused reports whether the simulation is frozen.
func (r *Runner) Paused() bool { return r.phase == Paused }

// Phase returns the current orchestration state.
func (r *Runner) Phase() Phase { return r.phase }

// Tick advances one generation when Running. ok is false when the step was
// skipped.
func (r *Runner) Tick() (life.Transition, bool) {
	t, ok, _ := r.TickContext(context.Background())
	return t, ok
}

// TickContext is Tick with neighbour counting spread over the engine's
// workers. A cancelled ctx leaves the state untouched.
func (r *Runner) TickContext(ctx context.Context) (life.Transition, bool, error) {
	if r.phase != Running {
		return life.Transition{}, false, nil
	}
	t, err := r.advance(ctx)
	if err != nil {
		return life.Transition{}, false, err
	}
	return t, true, nil
}

// StepOnce advances exactly one generation while Paused.
func (r *Runner) StepOnce() (life.Transition, bool) {
	if r.phase != Paused {
		return life.Transition{}, false
	}
	t, err := r.advance(context.Background())
	return t, err == nil
}

func (r *Runner) advance(ctx context.Context) (life.Transition, error) {
	next, t, err := r.engine.StepContext(ctx, r.state)
	if err != nil {
		return life.Transition{}, err
	}
	r.state = next
	r.stats.record(next.Generation, next.Live.Len(), t)
	return t, nil
}

// Live exposes the authoritative live set. Callers must treat it as read-only.
func (r *Runner) Live() life.LiveSet { return r.state.Live }

// Generation returns the number of completed steps since the last seed.
func (r *Runner) Generation() uint64 { return r.state.Generation }

// Stats returns the running statistics.
func (r *Runner) Stats() Stats { return r.stats }

// SeedValue returns the seed of the current population.
func (r *Runner) SeedValue() int64 { return r.seed }

// Parameters exposes the fixed configuration and live counters for display.
func (r *Runner) Parameters() core.ParameterSnapshot {
	rule, bound := r.engine.Rule(), r.engine.Bound()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rule",
			Params: []core.Parameter{
				core.IntParam("rule_lower", "Survive min", int64(rule.Lower)),
				core.IntParam("rule_upper", "Survive max / birth", int64(rule.Upper)),
			},
		},
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("pitch", "Cell pitch", int64(r.engine.Pitch())),
				core.FloatParam("world_radius", "World radius", bound.Radius),
				core.IntParam("grid_dim", "Initial grid", int64(r.seedCfg.Dim)),
				core.FloatParam("fill_chance", "Fill chance", r.seedCfg.FillChance),
				core.StringParam("seed_mode", "Seed mode", string(r.seedCfg.Mode)),
				core.IntParam("seed", "Seed", r.SeedValue()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.StringParam("phase", "Phase", r.phase.String()),
				core.IntParam("generation", "Generation", int64(r.stats.Generation)),
				core.IntParam("population", "Population", int64(r.stats.Population)),
				core.IntParam("peak_population", "Peak population", int64(r.stats.PeakPopulation)),
				core.FloatParam("average_population", "Average population", math.Round(r.stats.AveragePopulation*10)/10),
				core.IntParam("births", "Births", int64(r.stats.Births)),
				core.IntParam("deaths", "Deaths", int64(r.stats.Deaths)),
			},
		},
	}}
}

func init() {
	core.Register(Name, func(opts core.Options) (core.Sim, error) {
		r, err := New(opts)
		if err != nil {
			return nil, err
		}
		return r, nil
	})
}
