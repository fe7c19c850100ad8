// Package report renders wildfire runs: per-step frames, the annotated final
// state, the discrete-versus-logistic chart and plain-text exports. It only
// reads snapshots and series; nothing here feeds back into a run.
package report

import (
	"fmt"
	"strconv"

	"wildfire/internal/sims/wildfire"
)

// Summary carries the three values annotated on the final image.
type Summary struct {
	P          float64
	TotalBurnt int
	Steps      int
	Truncated  bool
}

// Summarize extracts the summary values from a run.
func Summarize(res wildfire.Result) Summary {
	return Summary{
		P:          res.P,
		TotalBurnt: res.TotalBurnt(),
		Steps:      res.Steps,
		Truncated:  res.Truncated,
	}
}

// Lines formats the summary for annotation.
func (s Summary) Lines() []string {
	steps := fmt.Sprintf("Steps to extinction: %d", s.Steps)
	if s.Truncated {
		steps = fmt.Sprintf("Steps recorded: %d (truncated)", s.Steps)
	}
	return []string{
		"Spread probability: " + strconv.FormatFloat(s.P, 'f', -1, 64),
		fmt.Sprintf("Burnt cells: %d", s.TotalBurnt),
		steps,
	}
}
