package logistic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"

	"wildfire/internal/core"
)

// Comparison summarises how far a discrete series sits from a model evaluated
// at the same integer steps.
type Comparison struct {
	RMSE   float64
	MaxAbs float64
}

// Reference evaluates m at t = 0, 1, …, steps-1.
func (m Model) Reference(steps int) []float64 {
	if steps <= 0 {
		return nil
	}
	out := make([]float64, steps)
	for i := range out {
		out[i] = m.At(float64(i))
	}
	return out
}

// Compare measures series against m sampled at the series' step indices.
func Compare(series []float64, m Model) Comparison {
	if len(series) == 0 {
		return Comparison{}
	}
	ref := m.Reference(len(series))
	return Comparison{
		RMSE:   floats.Distance(series, ref, 2) / math.Sqrt(float64(len(series))),
		MaxAbs: floats.Distance(series, ref, math.Inf(1)),
	}
}

// FitRate returns the growth rate whose curve from b0 best matches series in
// the least-squares sense. The search runs over log r so the rate stays
// positive.
func FitRate(series []float64, b0 float64) (float64, error) {
	if len(series) < 2 {
		return 0, fmt.Errorf("need at least two samples to fit, got %d: %w", len(series), core.ErrInvalidParameter)
	}
	if _, err := New(DefaultRate, b0); err != nil {
		return 0, err
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			m := Model{Rate: math.Exp(x[0]), B0: b0}
			var sum float64
			for i, v := range series {
				d := m.At(float64(i)) - v
				sum += d * d
			}
			return sum
		},
	}
	res, err := optimize.Minimize(problem, []float64{math.Log(DefaultRate)}, nil, &optimize.NelderMead{})
	if err != nil {
		return 0, fmt.Errorf("fit growth rate: %w", err)
	}
	return math.Exp(res.X[0]), nil
}
