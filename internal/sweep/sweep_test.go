package sweep

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildfire/internal/core"
	"wildfire/internal/sims/wildfire"
)

func TestProbabilities(t *testing.T) {
	ps, err := Probabilities(0, 1, 0.25)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, ps)

	ps, err = Probabilities(0.1, 0.3, 0.1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, ps)

	ps, err = Probabilities(0.4, 0.4, 0.1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.4}, ps)

	for _, c := range [][3]float64{{-0.1, 1, 0.1}, {0, 1.2, 0.1}, {0.6, 0.5, 0.1}, {0, 1, 0}} {
		_, err := Probabilities(c[0], c[1], c[2])
		assert.ErrorIs(t, err, core.ErrInvalidParameter, "%v", c)
	}
}

func testConfig() wildfire.Config {
	cfg := wildfire.DefaultConfig()
	cfg.Size = 10
	cfg.Seed = 42
	return cfg
}

func TestRunExtremes(t *testing.T) {
	points, err := Run(context.Background(), testConfig(), []float64{0, 1}, 3, 2)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, 0.0, points[0].P)
	assert.Equal(t, 3, points[0].Replicates)
	assert.InDelta(t, 0.01, points[0].MeanBurnt, 1e-12)
	assert.Equal(t, 2.0, points[0].MeanSteps)

	assert.Equal(t, 1.0, points[1].P)
	assert.InDelta(t, 1.0, points[1].MeanBurnt, 1e-12)
	assert.Zero(t, points[1].Truncated)
}

func TestRunIsDeterministicAcrossWorkerCounts(t *testing.T) {
	probs := []float64{0.3, 0.5, 0.7}
	one, err := Run(context.Background(), testConfig(), probs, 4, 1)
	require.NoError(t, err)
	many, err := Run(context.Background(), testConfig(), probs, 4, 8)
	require.NoError(t, err)
	assert.Equal(t, one, many)
}

func TestRunMatchesSingleRuns(t *testing.T) {
	cfg := testConfig()
	points, err := Run(context.Background(), cfg, []float64{0.5}, 2, 0)
	require.NoError(t, err)

	g, err := core.NewGrid(cfg.Size)
	require.NoError(t, err)
	s, err := wildfire.NewSnapshot(g, cfg.SeedCells())
	require.NoError(t, err)

	var burnt float64
	for j := 0; j < 2; j++ {
		res, err := wildfire.Run(g, s, 0.5, cfg.MaxSteps, core.NewRNG(ReplicateSeed(cfg.Seed, 0, j, 2)), nil)
		require.NoError(t, err)
		burnt += res.Final.BurntFraction()
	}
	assert.InDelta(t, burnt/2, points[0].MeanBurnt, 1e-12)
}

func TestRunRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	_, err := Run(ctx, testConfig(), []float64{0.5}, 0, 1)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = Run(ctx, testConfig(), []float64{0.5, 1.5}, 1, 1)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, testConfig(), []float64{0.5}, 2, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
