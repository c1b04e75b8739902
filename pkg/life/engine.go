// Package life is a sparse Game of Life engine over an unbounded lattice.
// Only live cells and their neighbours are ever stored.
package life

import (
	"context"

	"github.com/pkg/errors"
)

// Config fixes the lattice and rule for a run.
type Config struct {
	Pitch   int64
	Rule    Rule
	Bound   WorldBound
	Workers int
}

// DefaultConfig returns the classic setup: 10 unit cells, B3/S23 and a
// 1000 unit world radius.
func DefaultConfig() Config {
	return Config{Pitch: 10, Rule: ConwayRule, Bound: WorldBound{Radius: 1000}, Workers: 1}
}

// State is the authoritative simulation value. Step never mutates the State
// it is given.
type State struct {
	Live       LiveSet
	Generation uint64
}

// NewState wraps a seeded live set at generation zero.
func NewState(live LiveSet) State {
	if live == nil {
		live = LiveSet{}
	}
	return State{Live: live}
}

// Engine advances States under a fixed Config.
type Engine struct {
	cfg Config
}

// NewEngine validates cfg and returns an Engine.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Pitch <= 0 {
		return nil, errors.Wrapf(ErrInvalidPitch, "[NewEngine] pitch %d", cfg.Pitch)
	}
	if err := cfg.Rule.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewEngine]")
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Engine{cfg: cfg}, nil
}

// Rule exposes the rule for display.
func (e *Engine) Rule() Rule { return e.cfg.Rule }

// Bound exposes the world bound for display.
func (e *Engine) Bound() WorldBound { return e.cfg.Bound }

// Pitch returns the lattice spacing.
func (e *Engine) Pitch() int64 { return e.cfg.Pitch }

// Step counts neighbours, evaluates the rule and returns the next State plus
// the transition that produced it.
func (e *Engine) Step(s State) (State, Transition) {
	counts, live := CountNeighbors(s.Live, e.cfg.Pitch)
	return e.advance(s, counts, live)
}

// StepContext is Step with neighbour counting spread over the configured
// number of workers.
func (e *Engine) StepContext(ctx context.Context, s State) (State, Transition, error) {
	counts, live, err := CountNeighborsParallel(ctx, s.Live, e.cfg.Pitch, e.cfg.Workers)
	if err != nil {
		return s, Transition{}, err
	}
	next, t := e.advance(s, counts, live)
	return next, t, nil
}

func (e *Engine) advance(s State, counts NeighborCounts, live LiveSet) (State, Transition) {
	t := Evaluate(counts, live, e.cfg.Rule, e.cfg.Bound)
	t.Apply(live)
	return State{Live: live, Generation: s.Generation + 1}, t
}
