package life

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// CountNeighbors tallies, for every position adjacent to a live cell, how
// many live neighbours it has. The returned LiveSet is a normalized copy of
// live that the evaluator reads alongside the counts.
func CountNeighbors(live LiveSet, pitch int64) (NeighborCounts, LiveSet) {
	counts := make(NeighborCounts, len(live)*4)
	cells := make(LiveSet, len(live))
	for p := range live {
		accumulate(counts, p, pitch)
		cells[p] = struct{}{}
	}
	return counts, cells
}

func accumulate(counts NeighborCounts, p Position, pitch int64) {
	for _, d := range Directions {
		counts[p.Offset(d, pitch)]++
	}
}

// CountNeighborsParallel produces the same result as CountNeighbors by
// splitting the live cells into shards. Each worker fills its own map and the
// shards are summed afterwards, so no map is written concurrently.
func CountNeighborsParallel(ctx context.Context, live LiveSet, pitch int64, workers int) (NeighborCounts, LiveSet, error) {
	if workers <= 1 || len(live) < workers*2 {
		counts, cells := CountNeighbors(live, pitch)
		return counts, cells, ctx.Err()
	}

	shards := make([][]Position, workers)
	i := 0
	for p := range live {
		shards[i%workers] = append(shards[i%workers], p)
		i++
	}

	partial := make([]NeighborCounts, workers)
	eg, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		eg.Go(func() error {
			local := make(NeighborCounts, len(shards[w])*4)
			for _, p := range shards[w] {
				accumulate(local, p, pitch)
			}
			partial[w] = local
			return ctx.Err()
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	counts := partial[0]
	for _, local := range partial[1:] {
		for p, n := range local {
			counts[p] += n
		}
	}
	return counts, live.Clone(), nil
}
