package sim

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"sparse-life/internal/core"
	"sparse-life/pkg/life"
)

// SweepResult records how one world radius behaved for one seed.
type SweepResult struct {
	Radius         float64
	Seed           int64
	Steps          int
	PeakPopulation int
	PeakStep       int
	Final          int
	// MaxExtent is the largest distance from the origin reached by any cell.
	MaxExtent float64
}

func (r SweepResult) String() string {
	return fmt.Sprintf("radius=%g seed=%d peak=%d@%d final=%d extent=%.0f",
		r.Radius, r.Seed, r.PeakPopulation, r.PeakStep, r.Final, r.MaxExtent)
}

// RunScenario steps a fresh runner for steps generations under the given
// radius and tracks its population.
func RunScenario(ctx context.Context, opts core.Options, radius float64, seed int64, steps int) (SweepResult, error) {
	opts.Engine.Bound = life.WorldBound{Radius: radius}
	opts.Engine.Workers = 1
	r, err := New(opts)
	if err != nil {
		return SweepResult{}, err
	}
	r.Seed(seed)

	res := SweepResult{Radius: radius, Seed: seed, PeakPopulation: r.Live().Len()}
	res.MaxExtent = maxExtent(r.Live())
	for step := 1; step <= steps; step++ {
		if _, _, err := r.TickContext(ctx); err != nil {
			return res, err
		}
		res.Steps = step
		if n := r.Live().Len(); n > res.PeakPopulation {
			res.PeakPopulation = n
			res.PeakStep = step
		}
		if ext := maxExtent(r.Live()); ext > res.MaxExtent {
			res.MaxExtent = ext
		}
		if r.Stats().Extinct() {
			break
		}
	}
	res.Final = r.Live().Len()
	return res, nil
}

func maxExtent(live life.LiveSet) float64 {
	var m float64
	for p := range live {
		m = max(m, p.DistanceFromOrigin())
	}
	return m
}

// SeedRange returns n consecutive seeds starting at first.
func SeedRange(first int64, n int) ([]int64, error) {
	if n < 1 {
		return nil, errors.Errorf("[SeedRange] need at least one seed, got %d", n)
	}
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = first + int64(i)
	}
	return seeds, nil
}

// RadiusSweep runs every radius against every seed using at most workers
// concurrent scenarios. Results are ordered by radius then seed.
func RadiusSweep(ctx context.Context, opts core.Options, radii []float64, seeds []int64, steps, workers int) ([]SweepResult, error) {
	results := make([]SweepResult, len(radii)*len(seeds))
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, radius := range radii {
		for j, seed := range seeds {
			slot := i*len(seeds) + j
			eg.Go(func() error {
				res, err := RunScenario(ctx, opts, radius, seed, steps)
				if err != nil {
					return err
				}
				results[slot] = res
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(a, b int) bool {
		if results[a].Radius != results[b].Radius {
			return results[a].Radius < results[b].Radius
		}
		return results[a].Seed < results[b].Seed
	})
	return results, nil
}
