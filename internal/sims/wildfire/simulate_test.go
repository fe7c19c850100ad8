package wildfire

import (
	"errors"
	"math"
	"slices"
	"testing"

	"wildfire/internal/core"
)

func TestRunNoSpreadBurnsOnlySeed(t *testing.T) {
	g := mustGrid(t, 5)
	s := mustSnapshot(t, g, core.Coord{Row: 2, Col: 2})

	res, err := Run(g, s, 0, 100, core.NewRNG(1), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalBurnt() != 1 {
		t.Fatalf("expected 1 burnt cell, got %d", res.TotalBurnt())
	}
	// Step 0 records the burning seed, step 1 observes extinction.
	if res.Steps != 2 || res.Advances != 1 {
		t.Fatalf("expected steps=2 advances=1, got steps=%d advances=%d", res.Steps, res.Advances)
	}
	if res.Truncated || res.Err() != nil {
		t.Fatal("run reached extinction, must not be truncated")
	}
	if !slices.Equal(res.Series, []float64{0, 1.0 / 25}) {
		t.Fatalf("unexpected series %v", res.Series)
	}
}

func TestRunNoSpreadCountsOneAdvance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpreadChance = 0
	g := mustGrid(t, cfg.Size)
	s := mustSnapshot(t, g, cfg.SeedCells()...)

	res, err := Run(g, s, cfg.SpreadChance, cfg.MaxSteps, core.NewRNG(3), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Advances != 1 {
		t.Fatalf("seed burns out in one advance, got %d", res.Advances)
	}
	if res.Steps != 2 || len(res.Series) != 2 {
		t.Fatalf("expected 2 recorded steps, got steps=%d series=%v", res.Steps, res.Series)
	}
}

func TestRunCertainSpreadBurnsWholeGrid(t *testing.T) {
	g := mustGrid(t, 3)
	s := mustSnapshot(t, g, core.Coord{Row: 1, Col: 1})

	res, err := Run(g, s, 1, 100, core.NewRNG(1), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalBurnt() != 9 {
		t.Fatalf("expected all 9 cells burnt, got %d", res.TotalBurnt())
	}
	// Centre, ring and corners burn on three advances; the fourth recorded
	// step sees extinction.
	if res.Advances != 3 || res.Steps != 4 {
		t.Fatalf("expected advances=3 steps=4, got advances=%d steps=%d", res.Advances, res.Steps)
	}
	want := []float64{0, 1.0 / 9, 5.0 / 9, 1}
	if !slices.Equal(res.Series, want) {
		t.Fatalf("series = %v, want %v", res.Series, want)
	}
}

func TestRunCertainSpreadFromCorner(t *testing.T) {
	n := 6
	g := mustGrid(t, n)
	s := mustSnapshot(t, g, core.Coord{Row: 0, Col: 0})

	res, err := Run(g, s, 1, 100, core.NewRNG(9), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalBurnt() != n*n {
		t.Fatalf("expected %d burnt, got %d", n*n, res.TotalBurnt())
	}
	// Manhattan diameter from a corner is 2(n-1).
	if res.Advances != 2*(n-1)+1 {
		t.Fatalf("expected %d advances, got %d", 2*(n-1)+1, res.Advances)
	}
}

func TestRunSeriesMonotoneAndBounded(t *testing.T) {
	g := mustGrid(t, 20)
	for seed := int64(1); seed <= 10; seed++ {
		s := mustSnapshot(t, g, g.Center())
		res, err := Run(g, s, 0.45, 100, core.NewRNG(seed), nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(res.Series) != res.Steps {
			t.Fatalf("seed %d: series length %d != steps %d", seed, len(res.Series), res.Steps)
		}
		if res.Steps > 100 {
			t.Fatalf("seed %d: steps %d exceed bound", seed, res.Steps)
		}
		for i := 1; i < len(res.Series); i++ {
			if res.Series[i] < res.Series[i-1] {
				t.Fatalf("seed %d: burnt fraction decreased at step %d", seed, i)
			}
			if res.Series[i] > 1 {
				t.Fatalf("seed %d: fraction above 1", seed)
			}
		}
		if !res.Truncated && res.Final.HasBurning() {
			t.Fatalf("seed %d: completed run still has burning cells", seed)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	g := mustGrid(t, 20)
	run := func() Result {
		s := mustSnapshot(t, g, g.Center())
		res, err := Run(g, s, 0.4, 100, core.NewRNG(2024), nil)
		if err != nil {
			t.Fatal(err)
		}
		return res
	}
	a, b := run(), run()
	if !slices.Equal(a.Series, b.Series) {
		t.Fatal("series differ for identical seeds")
	}
	if !a.Final.Equal(b.Final) {
		t.Fatal("final snapshots differ for identical seeds")
	}
}

func TestRunTruncated(t *testing.T) {
	g := mustGrid(t, 20)
	s := mustSnapshot(t, g, g.Center())

	res, err := Run(g, s, 1, 3, core.NewRNG(1), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Truncated {
		t.Fatal("expected truncated run")
	}
	if res.Steps != 3 || len(res.Series) != 3 {
		t.Fatalf("expected 3 recorded steps, got %d", res.Steps)
	}
	if !res.Final.HasBurning() {
		t.Fatal("truncated run should still be burning")
	}
	if !errors.Is(res.Err(), ErrTruncatedRun) {
		t.Fatalf("Err() = %v, want ErrTruncatedRun", res.Err())
	}
}

func TestRunObserverSeesEveryStepReadOnly(t *testing.T) {
	g := mustGrid(t, 10)

	var steps []int
	var fractions []float64
	observe := func(step int, snap *Snapshot) {
		steps = append(steps, step)
		fractions = append(fractions, snap.BurntFraction())
		_ = snap.Cells()
	}

	s := mustSnapshot(t, g, g.Center())
	observed, err := Run(g, s, 0.5, 100, core.NewRNG(5), observe)
	if err != nil {
		t.Fatal(err)
	}
	s = mustSnapshot(t, g, g.Center())
	plain, err := Run(g, s, 0.5, 100, core.NewRNG(5), nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(steps) != observed.Steps {
		t.Fatalf("observer called %d times for %d steps", len(steps), observed.Steps)
	}
	for i, st := range steps {
		if st != i {
			t.Fatalf("observer step %d reported as %d", i, st)
		}
	}
	if !slices.Equal(fractions, observed.Series) {
		t.Fatal("observer saw different fractions than the series")
	}
	if !slices.Equal(observed.Series, plain.Series) || !observed.Final.Equal(plain.Final) {
		t.Fatal("observing a run must not change it")
	}
}

func TestRunRejectsInvalidParameters(t *testing.T) {
	g := mustGrid(t, 4)
	s := mustSnapshot(t, g, core.Coord{Row: 1, Col: 1})

	calls := 0
	observe := func(int, *Snapshot) { calls++ }
	cases := []struct {
		name  string
		p     float64
		steps int
	}{
		{"p below zero", -0.5, 10},
		{"p above one", 1.5, 10},
		{"zero steps", 0.5, 0},
		{"negative steps", 0.5, -1},
	}
	for _, tc := range cases {
		if _, err := Run(g, s, tc.p, tc.steps, core.NewRNG(1), observe); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("%s: err = %v", tc.name, err)
		}
	}
	if calls != 0 {
		t.Fatal("no work may happen after a parameter error")
	}
	if _, err := Run(nil, s, 0.5, 10, core.NewRNG(1), nil); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("nil grid err = %v", err)
	}
}

func TestFireStepsLikeRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 12
	cfg.SpreadChance = 0.6
	cfg.Seed = 77

	fire, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	g := mustGrid(t, cfg.Size)
	s := mustSnapshot(t, g, cfg.SeedCells()...)
	res, err := Run(g, s, cfg.SpreadChance, cfg.MaxSteps, core.NewRNG(cfg.Seed), nil)
	if err != nil {
		t.Fatal(err)
	}

	for !fire.Extinct() {
		fire.Step()
	}
	if fire.StepIndex() != res.Advances {
		t.Fatalf("fire took %d steps, run advanced %d times", fire.StepIndex(), res.Advances)
	}
	if !fire.Snapshot().Equal(res.Final) {
		t.Fatal("live stepping diverged from Run")
	}

	fire.Step()
	if fire.StepIndex() != res.Advances {
		t.Fatal("Step after extinction must be a no-op")
	}

	fire.Reset(0)
	if fire.StepIndex() != 0 || fire.Snapshot().Count(Burning) != 1 {
		t.Fatal("Reset must restore step 0")
	}
}

func TestFireSetFloatParameter(t *testing.T) {
	fire, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !fire.SetFloatParameter(KeySpreadChance, 1.7) {
		t.Fatal("spread probability should be adjustable")
	}
	p, ok := fire.Parameters().Lookup(KeySpreadChance)
	if !ok || p.Value != "1" {
		t.Fatalf("expected clamped value 1, got %+v", p)
	}
	if fire.SetFloatParameter("r", 2) {
		t.Fatal("growth rate is not adjustable at runtime")
	}
	if fire.SetFloatParameter(KeySpreadChance, math.NaN()) {
		t.Fatal("NaN must be rejected")
	}
	if fire.cfg.SpreadChance != 1 {
		t.Fatalf("rejected value changed p to %v", fire.cfg.SpreadChance)
	}
	if len(fire.Palette()) != 3 {
		t.Fatal("palette must cover all statuses")
	}
}

func TestFireParameterControls(t *testing.T) {
	fire, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	controls := fire.ParameterControls()
	if len(controls) != 1 || controls[0].Key != KeySpreadChance {
		t.Fatalf("unexpected controls %+v", controls)
	}
	next := controls[0].Adjust(fire.cfg.SpreadChance, 1)
	if !fire.SetFloatParameter(controls[0].Key, next) {
		t.Fatal("control key must be settable")
	}
	if math.Abs(fire.cfg.SpreadChance-0.45) > 1e-9 {
		t.Fatalf("expected 0.45, got %v", fire.cfg.SpreadChance)
	}
}

func TestFireResetPanicsOnCorruptSeeds(t *testing.T) {
	fire, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	fire.cfg.Seeds = []core.Coord{{Row: -1, Col: 0}}
	defer func() {
		if recover() == nil {
			t.Fatal("Reset must panic when seeds are out of range")
		}
	}()
	fire.Reset(1)
}
