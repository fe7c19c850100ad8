// Package logistic provides the continuous reference for the wildfire burn
// curve: the logistic ODE dB/dt = r·B·(1−B) and its closed-form solution.
package logistic

import (
	"fmt"
	"math"

	"wildfire/internal/core"
)

const (
	// DefaultRate is the growth rate used when none is configured.
	DefaultRate = 1.5
	// DefaultSamplesPerStep is the oversampling factor of Solve.
	DefaultSamplesPerStep = 10
)

// Model is a logistic growth curve with rate Rate and B(0) = B0.
type Model struct {
	Rate float64
	B0   float64
}

// New validates r > 0 and 0 < b0 < 1.
func New(r, b0 float64) (Model, error) {
	if !(r > 0) || math.IsInf(r, 1) {
		return Model{}, fmt.Errorf("growth rate %v must be positive: %w", r, core.ErrInvalidParameter)
	}
	if !(b0 > 0 && b0 < 1) {
		return Model{}, fmt.Errorf("initial fraction %v outside (0,1): %w", b0, core.ErrInvalidParameter)
	}
	return Model{Rate: r, B0: b0}, nil
}

// InitialFraction returns 1/n², the share of a single seed cell.
func InitialFraction(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 1 / float64(n*n)
}

// At evaluates the closed-form solution
// B(t) = B0·e^{rt} / (1 − B0 + B0·e^{rt}), rearranged so large rt saturates
// to 1 instead of overflowing.
func (m Model) At(t float64) float64 {
	return 1 / (1 + (1-m.B0)/m.B0*math.Exp(-m.Rate*t))
}

// Derivative returns dB/dt at fraction b.
func (m Model) Derivative(b float64) float64 {
	return m.Rate * b * (1 - b)
}

// Sample is one point of a continuous trajectory.
type Sample struct {
	T float64
	B float64
}

// Trajectory is an ordered list of samples.
type Trajectory []Sample

// Times returns the sample times.
func (tr Trajectory) Times() []float64 {
	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = s.T
	}
	return out
}

// Values returns the sampled fractions.
func (tr Trajectory) Values() []float64 {
	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = s.B
	}
	return out
}

// Solve samples the solution over [0, horizon] at t = k/perStep for
// k = 0 … round(horizon·perStep). Samples come from the closed form, so every
// valid model solves, however steep its rate.
func (m Model) Solve(horizon float64, perStep int) (Trajectory, error) {
	if _, err := New(m.Rate, m.B0); err != nil {
		return nil, err
	}
	if !(horizon >= 0) || math.IsInf(horizon, 1) {
		return nil, fmt.Errorf("horizon %v must be finite and non-negative: %w", horizon, core.ErrInvalidParameter)
	}
	if perStep <= 0 {
		return nil, fmt.Errorf("samples per step %d must be positive: %w", perStep, core.ErrInvalidParameter)
	}

	count := int(math.Round(horizon * float64(perStep)))
	tr := make(Trajectory, count+1)
	for k := range tr {
		t := float64(k) / float64(perStep)
		tr[k] = Sample{T: t, B: m.At(t)}
	}
	return tr, nil
}
