package wildfire

import (
	"errors"
	"fmt"

	"wildfire/internal/core"
)

// ErrTruncatedRun reports that a run hit its step bound while cells were
// still burning.
var ErrTruncatedRun = errors.New("run truncated before extinction")

// StepObserver receives every recorded step. The snapshot must be treated as
// read-only.
type StepObserver func(step int, snap *Snapshot)

// Result is the outcome of a discrete run.
type Result struct {
	// P is the spread probability the run used.
	P float64
	// Series holds the burnt fraction of every recorded step.
	Series []float64
	// Final is the last snapshot the loop held.
	Final *Snapshot
	// Steps is the number of recorded steps: the loop index at which
	// extinction was observed plus one, or the step bound when truncated.
	Steps int
	// Advances counts how many times the automaton was applied.
	Advances int
	// Truncated is set when the bound was reached without observing
	// extinction.
	Truncated bool
}

// TotalBurnt returns the number of burnt cells in the final snapshot.
func (r Result) TotalBurnt() int {
	if r.Final == nil {
		return 0
	}
	return r.Final.Count(Burnt)
}

// Err returns ErrTruncatedRun for truncated runs and nil otherwise.
func (r Result) Err() error {
	if r.Truncated {
		return fmt.Errorf("%d steps recorded, %d cells still burning: %w",
			r.Steps, r.Final.Count(Burning), ErrTruncatedRun)
	}
	return nil
}

// Run drives the automaton from initial until extinction or maxSteps recorded
// steps. Each loop iteration records the burnt fraction, notifies observe,
// stops if nothing is burning and otherwise advances. Parameters are checked
// before any step is taken.
func Run(g *core.Grid, initial *Snapshot, p float64, maxSteps int, rng core.Source, observe StepObserver) (Result, error) {
	if err := checkStep(initial, g, p, rng); err != nil {
		return Result{}, err
	}
	if maxSteps <= 0 {
		return Result{}, fmt.Errorf("max steps %d must be positive: %w", maxSteps, core.ErrInvalidParameter)
	}

	res := Result{P: p, Series: make([]float64, 0, maxSteps), Truncated: true}
	snap := initial
	for step := 0; step < maxSteps; step++ {
		res.Series = append(res.Series, snap.BurntFraction())
		res.Steps = step + 1
		if observe != nil {
			observe(step, snap)
		}
		if !snap.HasBurning() {
			res.Truncated = false
			break
		}
		snap = advance(snap, g, p, rng)
		res.Advances++
	}
	res.Final = snap
	return res, nil
}
