package wildfire

import (
	"fmt"
	"math"

	"wildfire/internal/core"
)

// Fire steps the automaton one tick at a time for interactive viewers. It
// owns its grid, current snapshot and seeded random source.
type Fire struct {
	cfg  Config
	grid *core.Grid
	cur  *Snapshot
	rng  *core.RNG
	step int
	seed int64
}

// New validates cfg and returns a Fire reset to step 0.
func New(cfg Config) (*Fire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := core.NewGrid(cfg.Size)
	if err != nil {
		return nil, err
	}
	f := &Fire{cfg: cfg, grid: grid}
	f.Reset(cfg.Seed)
	return f, nil
}

// Name returns the simulation identifier.
func (f *Fire) Name() string { return "wildfire" }

// Size reports the grid dimensions.
func (f *Fire) Size() core.Size { return f.grid.Size() }

// Cells exposes the current statuses as palette indices.
func (f *Fire) Cells() []uint8 { return f.cur.Cells() }

// Snapshot returns the current state.
func (f *Fire) Snapshot() *Snapshot { return f.cur }

// StepIndex returns the number of steps taken since the last reset.
func (f *Fire) StepIndex() int { return f.step }

// Seed returns the seed of the current random stream.
func (f *Fire) Seed() int64 { return f.seed }

// Reset re-ignites the seed cells. A zero seed falls back to the configured
// seed; when that is zero too a seed is drawn from process entropy.
func (f *Fire) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = f.cfg.Seed
	}
	if effective == 0 {
		effective = core.EntropySeed()
	}
	f.seed = effective
	f.rng = core.NewRNG(effective)
	cur, err := NewSnapshot(f.grid, f.cfg.SeedCells())
	if err != nil {
		// Seeds were checked by Validate.
		panic(fmt.Sprintf("wildfire: seeds invalid after validation: %v", err))
	}
	f.cur = cur
	f.step = 0
}

// Step advances the automaton once. It is a no-op after extinction.
func (f *Fire) Step() {
	if !f.cur.HasBurning() {
		return
	}
	f.cur = advance(f.cur, f.grid, f.cfg.SpreadChance, f.rng)
	f.step++
}

// Extinct reports whether no cell is burning.
func (f *Fire) Extinct() bool { return !f.cur.HasBurning() }

// SetFloatParameter updates the spread probability. Values are clamped to
// [0,1]; NaN and other keys are rejected.
func (f *Fire) SetFloatParameter(key string, value float64) bool {
	if key != KeySpreadChance || math.IsNaN(value) {
		return false
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	f.cfg.SpreadChance = value
	return true
}
