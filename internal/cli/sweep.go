package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"wildfire/internal/core"
	"wildfire/internal/report"
	"wildfire/internal/sims/wildfire"
	"wildfire/internal/sweep"
)

// SweepOptions configures a probability sweep.
type SweepOptions struct {
	From, To, Step float64
	Replicates     int
	Workers        int
	// ChartPath, when set, receives a PNG of mean burnt fraction against p.
	ChartPath string
	Out       io.Writer
}

// Sweep runs the automaton across a probability range and prints one table
// row per probability.
func Sweep(ctx context.Context, base wildfire.Config, opts SweepOptions, logger *slog.Logger) ([]sweep.Point, error) {
	probs, err := sweep.Probabilities(opts.From, opts.To, opts.Step)
	if err != nil {
		return nil, err
	}
	if base.Seed == 0 {
		base.Seed = core.EntropySeed()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	logger.Info("starting sweep",
		"n", base.Size,
		"probabilities", len(probs),
		"replicates", opts.Replicates,
		"workers", opts.Workers,
		"seed", base.Seed,
	)
	start := time.Now()
	points, err := sweep.Run(ctx, base, probs, opts.Replicates, opts.Workers)
	if err != nil {
		return nil, err
	}
	logger.Info("sweep finished", "elapsed", time.Since(start).Round(time.Millisecond))

	if err := WriteSweepTable(opts.Out, points); err != nil {
		return points, err
	}

	if opts.ChartPath != "" {
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, pt := range points {
			xs[i], ys[i] = pt.P, pt.MeanBurnt
		}
		if err := writeFile(opts.ChartPath, func(w io.Writer) error {
			return report.WriteSweepChart(w, xs, ys)
		}); err != nil {
			return points, err
		}
		logger.Info("sweep chart written", "path", opts.ChartPath)
	}
	return points, nil
}

// WriteSweepTable prints the sweep as aligned columns.
func WriteSweepTable(w io.Writer, points []sweep.Point) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "p\tmean_burnt\tmean_steps\ttruncated")
	for _, pt := range points {
		fmt.Fprintf(tw, "%.3f\t%.4f\t%.2f\t%d/%d\n", pt.P, pt.MeanBurnt, pt.MeanSteps, pt.Truncated, pt.Replicates)
	}
	return tw.Flush()
}
