package report

import (
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"wildfire/internal/logistic"
)

const (
	chartWidth  = 900
	chartHeight = 520
)

// WriteComparisonChart draws the discrete burnt-fraction series as dots and
// the logistic trajectory as a line, and writes the PNG to w.
func WriteComparisonChart(w io.Writer, series []float64, traj logistic.Trajectory, p, r float64) error {
	if len(series) == 0 {
		return fmt.Errorf("comparison chart: empty series")
	}
	steps := make([]float64, len(series))
	for i := range steps {
		steps[i] = float64(i)
	}

	xMax := float64(len(series) - 1)
	if n := len(traj); n > 0 {
		xMax = math.Max(xMax, traj[n-1].T)
	}
	if xMax < 1 {
		xMax = 1
	}

	plotted := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Cellular automaton",
			XValues: steps,
			YValues: series,
			Style: chart.Style{
				StrokeColor: drawing.Color{R: 200, G: 30, B: 20, A: 255},
				StrokeWidth: 1.5,
				DotColor:    drawing.Color{R: 200, G: 30, B: 20, A: 255},
				DotWidth:    3,
			},
		},
	}
	if len(traj) > 1 {
		plotted = append(plotted, chart.ContinuousSeries{
			Name:    fmt.Sprintf("Logistic ODE (r = %g)", r),
			XValues: traj.Times(),
			YValues: traj.Values(),
			Style: chart.Style{
				StrokeColor: chart.ColorBlue,
				StrokeWidth: 2.5,
			},
		})
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Burnt fraction, p = %g", p),
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "Step",
			Range: &chart.ContinuousRange{Min: 0, Max: xMax},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "Burnt fraction",
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: plotted,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render comparison chart: %w", err)
	}
	return nil
}

// WriteSweepChart plots the mean final burnt fraction against the spread
// probability.
func WriteSweepChart(w io.Writer, probs, burnt []float64) error {
	if len(probs) < 2 || len(probs) != len(burnt) {
		return fmt.Errorf("sweep chart: need at least two matching points, got %d and %d", len(probs), len(burnt))
	}
	graph := chart.Chart{
		Title:  "Final burnt fraction by spread probability",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: "Spread probability"},
		YAxis: chart.YAxis{
			Name:  "Mean burnt fraction",
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Mean burnt fraction",
				XValues: probs,
				YValues: burnt,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 2,
					DotColor:    chart.ColorRed,
					DotWidth:    3,
				},
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render sweep chart: %w", err)
	}
	return nil
}
