package core

import "math"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeText denotes free-form values such as coordinate lists.
	ParamTypeText ParamType = "text"
)

// Parameter describes a single value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of parameters exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter registered under key, if any.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, group := range s.Groups {
		for _, p := range group.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// FloatParameterSetter allows viewer interactions to update floating point
// parameters. Implementations report whether the key was accepted.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// ParameterControl describes a float parameter the viewer can nudge up and
// down by Step within [Min, Max].
type ParameterControl struct {
	Key   string
	Label string
	Step  float64
	Min   float64
	Max   float64
}

// Adjust returns value moved by direction steps and clamped to the bounds.
func (c ParameterControl) Adjust(value float64, direction int) float64 {
	step := c.Step
	if step <= 0 {
		step = 0.05
	}
	// Snap to the step grid so repeated nudges do not accumulate drift.
	target := math.Round((value+float64(direction)*step)/step) * step
	return math.Min(math.Max(target, c.Min), c.Max)
}

// ParameterControlsProvider exposes the viewer-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}
