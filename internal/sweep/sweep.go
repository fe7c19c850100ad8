// Package sweep runs the wildfire automaton over a range of spread
// probabilities with several replicates each, on a bounded worker pool.
package sweep

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"wildfire/internal/core"
	"wildfire/internal/sims/wildfire"
)

// Point aggregates the replicates run at one spread probability.
type Point struct {
	P          float64
	Replicates int
	// MeanBurnt is the mean final burnt fraction.
	MeanBurnt float64
	// MeanSteps is the mean number of recorded steps.
	MeanSteps float64
	// Truncated counts replicates that hit the step bound.
	Truncated int
}

// Probabilities lists from, from+step, … up to and including to.
func Probabilities(from, to, step float64) ([]float64, error) {
	if !(from >= 0 && to <= 1 && from <= to) {
		return nil, fmt.Errorf("range [%g, %g] must lie within [0, 1]: %w", from, to, core.ErrInvalidParameter)
	}
	if !(step > 0) {
		return nil, fmt.Errorf("step %g must be positive: %w", step, core.ErrInvalidParameter)
	}
	count := int(math.Floor((to-from)/step+1e-9)) + 1
	out := make([]float64, count)
	for k := range out {
		// Round away float drift so 0.1 steps print as 0.3, not 0.30000000000000004.
		out[k] = math.Min(math.Round((from+float64(k)*step)*1e9)/1e9, 1)
	}
	return out, nil
}

// ReplicateSeed is the RNG seed of replicate j at probability index i.
func ReplicateSeed(base int64, i, j, replicates int) int64 {
	return base + int64(i*replicates+j)
}

type outcome struct {
	burnt     float64
	steps     int
	truncated bool
}

// Run simulates replicates runs per probability using base for everything
// but the spread chance. Each run owns its RNG and snapshots; the grid is
// shared read-only. workers <= 0 uses one worker per CPU. Points come back in
// the order of probs.
func Run(ctx context.Context, base wildfire.Config, probs []float64, replicates, workers int) ([]Point, error) {
	if replicates <= 0 {
		return nil, fmt.Errorf("replicates %d must be positive: %w", replicates, core.ErrInvalidParameter)
	}
	for _, p := range probs {
		cfg := base
		cfg.SpreadChance = p
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, err := core.NewGrid(base.Size)
	if err != nil {
		return nil, err
	}
	initial, err := wildfire.NewSnapshot(g, base.SeedCells())
	if err != nil {
		return nil, err
	}

	results := make([][]outcome, len(probs))
	for i := range results {
		results[i] = make([]outcome, replicates)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, p := range probs {
		for j := 0; j < replicates; j++ {
			i, j, p := i, j, p
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				rng := core.NewRNG(ReplicateSeed(base.Seed, i, j, replicates))
				res, err := wildfire.Run(g, initial, p, base.MaxSteps, rng, nil)
				if err != nil {
					return fmt.Errorf("p=%g replicate %d: %w", p, j, err)
				}
				results[i][j] = outcome{
					burnt:     res.Final.BurntFraction(),
					steps:     res.Steps,
					truncated: res.Truncated,
				}
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	points := make([]Point, len(probs))
	for i, p := range probs {
		pt := Point{P: p, Replicates: replicates}
		for _, o := range results[i] {
			pt.MeanBurnt += o.burnt
			pt.MeanSteps += float64(o.steps)
			if o.truncated {
				pt.Truncated++
			}
		}
		pt.MeanBurnt /= float64(replicates)
		pt.MeanSteps /= float64(replicates)
		points[i] = pt
	}
	return points, nil
}
