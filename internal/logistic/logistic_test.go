package logistic

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildfire/internal/core"
)

func TestNewRejectsInvalidParameters(t *testing.T) {
	cases := []struct {
		name string
		r    float64
		b0   float64
	}{
		{"zero rate", 0, 0.1},
		{"negative rate", -1, 0.1},
		{"nan rate", math.NaN(), 0.1},
		{"zero fraction", 1.5, 0},
		{"full fraction", 1.5, 1},
		{"nan fraction", 1.5, math.NaN()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.r, tc.b0)
			assert.ErrorIs(t, err, core.ErrInvalidParameter)
		})
	}
}

func TestAtStartsAtB0AndIncreases(t *testing.T) {
	m, err := New(1.5, InitialFraction(20))
	require.NoError(t, err)

	assert.InDelta(t, 1.0/400, m.At(0), 1e-15)

	prev := m.At(0)
	for i := 1; i <= 200; i++ {
		cur := m.At(float64(i) / 10)
		if cur >= 1 {
			break
		}
		require.Greater(t, cur, prev, "curve must increase at t=%v", float64(i)/10)
		prev = cur
	}
	assert.InDelta(t, 1, m.At(1000), 1e-12, "curve saturates without overflow")
}

func TestSolveSamplesClosedForm(t *testing.T) {
	m, err := New(1.5, 1.0/400)
	require.NoError(t, err)

	tr, err := m.Solve(12, DefaultSamplesPerStep)
	require.NoError(t, err)
	require.Len(t, tr, 121)

	assert.Equal(t, 0.0, tr[0].T)
	assert.InDelta(t, m.B0, tr[0].B, 1e-15)
	assert.Equal(t, 12.0, tr[len(tr)-1].T)

	for i := 1; i < len(tr); i++ {
		assert.Greater(t, tr[i].B, tr[i-1].B)
	}
}

func TestClosedFormSolvesODE(t *testing.T) {
	m, err := New(1.5, 1.0/400)
	require.NoError(t, err)
	tr, err := m.Solve(12, DefaultSamplesPerStep)
	require.NoError(t, err)

	f := func(_, b float64) float64 { return m.Derivative(b) }
	integ := newIntegrator()
	b := m.B0
	for i := 1; i < len(tr); i++ {
		b, err = integ.integrate(f, tr[i-1].T, b, tr[i].T)
		require.NoError(t, err)
		assert.InDelta(t, tr[i].B, b, 1e-6, "t=%v", tr[i].T)
	}
}

func TestSolveSteepRates(t *testing.T) {
	for _, r := range []float64{50, 1e4, 1e6, 1e7} {
		m, err := New(r, 1.0/400)
		require.NoError(t, err)

		tr, err := m.Solve(20, DefaultSamplesPerStep)
		require.NoError(t, err, "r=%g", r)
		require.Len(t, tr, 201)
		for i := 1; i < len(tr); i++ {
			require.GreaterOrEqual(t, tr[i].B, tr[i-1].B, "r=%g t=%v", r, tr[i].T)
			require.LessOrEqual(t, tr[i].B, 1.0)
		}
		assert.InDelta(t, 1, tr[len(tr)-1].B, 1e-9, "r=%g", r)
	}
}

func TestSolveZeroHorizon(t *testing.T) {
	m := Model{Rate: 2, B0: 0.25}
	tr, err := m.Solve(0, 10)
	require.NoError(t, err)
	require.Len(t, tr, 1)
	assert.InDelta(t, 0.25, tr[0].B, 1e-15)
}

func TestSolveRejectsBadArguments(t *testing.T) {
	m := Model{Rate: 2, B0: 0.25}
	_, err := m.Solve(-1, 10)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
	_, err = m.Solve(5, 0)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
	_, err = Model{Rate: 0, B0: 0.25}.Solve(5, 10)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestIntegratorExponentialDecay(t *testing.T) {
	integ := newIntegrator()
	y, err := integ.integrate(func(_, y float64) float64 { return -y }, 0, 1, 3)
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-3), y, 1e-9)

	_, err = integ.integrate(func(_, y float64) float64 { return y }, 1, 1, 0)
	assert.Error(t, err)
}

func TestIntegratorReportsStepUnderflow(t *testing.T) {
	integ := newIntegrator()
	integ.MaxSteps = 3
	integ.MaxStep = 1e-3
	_, err := integ.integrate(func(_, y float64) float64 { return y }, 0, 1, 1)
	assert.True(t, errors.Is(err, errStepSize))
}

func TestCompareExactSeries(t *testing.T) {
	m := Model{Rate: 0.9, B0: 0.01}
	series := m.Reference(25)

	cmp := Compare(series, m)
	assert.InDelta(t, 0, cmp.RMSE, 1e-15)
	assert.InDelta(t, 0, cmp.MaxAbs, 1e-15)

	series[3] += 0.1
	cmp = Compare(series, m)
	assert.InDelta(t, 0.1, cmp.MaxAbs, 1e-12)
	assert.InDelta(t, 0.1/math.Sqrt(25), cmp.RMSE, 1e-12)

	assert.Equal(t, Comparison{}, Compare(nil, m))
}

func TestFitRateRecoversKnownRate(t *testing.T) {
	m := Model{Rate: 0.8, B0: 0.01}
	r, err := FitRate(m.Reference(30), m.B0)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, r, 1e-2)
}

func TestFitRateNeedsSamples(t *testing.T) {
	_, err := FitRate([]float64{0.1}, 0.1)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
	_, err = FitRate([]float64{0.1, 0.2}, 0)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}
