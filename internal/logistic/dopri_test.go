package logistic

import (
	"errors"
	"fmt"
	"math"
)

// errStepSize is returned when the integrator cannot meet its tolerance
// without shrinking the step below MinStep.
var errStepSize = errors.New("step size underflow")

// odeFunc is the right-hand side of a scalar ODE dy/dt = f(t, y).
type odeFunc func(t, y float64) float64

// integrator is an adaptive Dormand–Prince 5(4) stepper for scalar ODEs. The
// tests use it to check that the closed form really solves dB/dt.
type integrator struct {
	RelTol  float64
	AbsTol  float64
	MinStep float64
	MaxStep float64
	// MaxSteps caps accepted plus rejected steps per integrate call.
	MaxSteps int
}

func newIntegrator() integrator {
	return integrator{
		RelTol:   1e-10,
		AbsTol:   1e-12,
		MinStep:  1e-12,
		MaxStep:  0.25,
		MaxSteps: 100000,
	}
}

// Dormand–Prince tableau.
const (
	c2, c3, c4, c5 = 1.0 / 5, 3.0 / 10, 4.0 / 5, 8.0 / 9

	a21 = 1.0 / 5
	a31 = 3.0 / 40
	a32 = 9.0 / 40
	a41 = 44.0 / 45
	a42 = -56.0 / 15
	a43 = 32.0 / 9
	a51 = 19372.0 / 6561
	a52 = -25360.0 / 2187
	a53 = 64448.0 / 6561
	a54 = -212.0 / 729
	a61 = 9017.0 / 3168
	a62 = -355.0 / 33
	a63 = 46732.0 / 5247
	a64 = 49.0 / 176
	a65 = -5103.0 / 18656

	b1 = 35.0 / 384
	b3 = 500.0 / 1113
	b4 = 125.0 / 192
	b5 = -2187.0 / 6784
	b6 = 11.0 / 84

	// Fifth-order minus embedded fourth-order weights.
	e1 = 71.0 / 57600
	e3 = -71.0 / 16695
	e4 = 71.0 / 1920
	e5 = -17253.0 / 339200
	e6 = 22.0 / 525
	e7 = -1.0 / 40
)

// integrate advances y from t0 to t1 and returns y(t1).
func (in integrator) integrate(f odeFunc, t0, y0, t1 float64) (float64, error) {
	if t1 < t0 {
		return 0, fmt.Errorf("end time %v before start %v", t1, t0)
	}
	if t1 == t0 {
		return y0, nil
	}

	h := t1 - t0
	if in.MaxStep > 0 && h > in.MaxStep {
		h = in.MaxStep
	}
	t, y := t0, y0
	k1 := f(t, y)
	for iter := 0; t < t1; iter++ {
		if in.MaxSteps > 0 && iter >= in.MaxSteps {
			return y, fmt.Errorf("no convergence after %d steps at t=%v: %w", iter, t, errStepSize)
		}
		last := false
		if t+h >= t1 {
			h = t1 - t
			last = true
		}

		k2 := f(t+c2*h, y+h*a21*k1)
		k3 := f(t+c3*h, y+h*(a31*k1+a32*k2))
		k4 := f(t+c4*h, y+h*(a41*k1+a42*k2+a43*k3))
		k5 := f(t+c5*h, y+h*(a51*k1+a52*k2+a53*k3+a54*k4))
		k6 := f(t+h, y+h*(a61*k1+a62*k2+a63*k3+a64*k4+a65*k5))
		yNew := y + h*(b1*k1+b3*k3+b4*k4+b5*k5+b6*k6)
		k7 := f(t+h, yNew)

		errEst := math.Abs(h * (e1*k1 + e3*k3 + e4*k4 + e5*k5 + e6*k6 + e7*k7))
		scale := in.AbsTol + in.RelTol*math.Max(math.Abs(y), math.Abs(yNew))
		ratio := errEst / scale

		if ratio <= 1 {
			if last {
				return yNew, nil
			}
			t += h
			y = yNew
			// First same as last: k7 is f at the accepted point.
			k1 = k7
		}

		factor := 5.0
		if ratio > 0 {
			factor = math.Min(5, math.Max(0.2, 0.9*math.Pow(ratio, -0.2)))
		}
		h *= factor
		if in.MaxStep > 0 && h > in.MaxStep {
			h = in.MaxStep
		}
		if h < in.MinStep {
			return y, fmt.Errorf("step %v below minimum at t=%v: %w", h, t, errStepSize)
		}
	}
	return y, nil
}
