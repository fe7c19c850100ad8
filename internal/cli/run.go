// Package cli wires configuration, simulation and reporting into the
// pipelines behind the wildfire command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"wildfire/internal/config"
	"wildfire/internal/core"
	"wildfire/internal/logistic"
	"wildfire/internal/report"
	"wildfire/internal/sims/wildfire"
)

// DefaultImagePath is where the final state is written unless overridden.
const DefaultImagePath = "estado_final_incendio.png"

const (
	imageTarget = 600
	videoTarget = 400
	finalTitle  = "Final fire state"
)

// RunOptions selects the outputs of a single run. Empty paths disable the
// corresponding output.
type RunOptions struct {
	ImagePath string
	ChartPath string
	VideoPath string
	VideoFPS  int
	CSVPath   string
	// Plot writes a terminal chart of both curves to Out.
	Plot bool
	// Strict turns a truncated run into an error.
	Strict bool
	// DumpConfigPath receives the resolved configuration as YAML, seed
	// included, so the run can be replayed with --config.
	DumpConfigPath string
	Out            io.Writer
}

// Outcome is everything a run produced.
type Outcome struct {
	Config     wildfire.Config
	Result     wildfire.Result
	Model      logistic.Model
	Trajectory logistic.Trajectory
	Comparison logistic.Comparison
	// FittedRate is the least-squares growth rate; zero when the series is
	// too short to fit.
	FittedRate float64
}

// Run executes one simulation, solves the logistic reference over the same
// horizon and writes the requested outputs.
func Run(ctx context.Context, cfg wildfire.Config, opts RunOptions, logger *slog.Logger) (Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return Outcome{}, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = core.EntropySeed()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.DumpConfigPath != "" {
		if err := dumpConfig(opts.DumpConfigPath, cfg); err != nil {
			return Outcome{}, err
		}
		logger.Debug("config written", "path", opts.DumpConfigPath)
	}

	g, err := core.NewGrid(cfg.Size)
	if err != nil {
		return Outcome{}, err
	}
	initial, err := wildfire.NewSnapshot(g, cfg.SeedCells())
	if err != nil {
		return Outcome{}, err
	}

	logger.Info("starting run",
		"n", cfg.Size,
		"p", cfg.SpreadChance,
		"seeds", wildfire.FormatSeeds(cfg.SeedCells()),
		"max_steps", cfg.MaxSteps,
		"seed", cfg.Seed,
	)

	observers := []wildfire.StepObserver{stepLogger(ctx, logger)}
	var rec *report.Recorder
	if opts.VideoPath != "" {
		rec, err = report.NewRecorder(opts.VideoPath, cfg.Size, report.CellScale(cfg.Size, videoTarget), opts.VideoFPS)
		if err != nil {
			return Outcome{}, err
		}
		observers = append(observers, rec.Observe)
	}

	res, err := wildfire.Run(g, initial, cfg.SpreadChance, cfg.MaxSteps, core.NewRNG(cfg.Seed), chain(observers))
	if rec != nil {
		if cerr := rec.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}
	if err != nil {
		return Outcome{}, err
	}
	if rec != nil {
		logger.Info("video written", "path", opts.VideoPath, "frames", rec.Frames())
	}

	out := Outcome{Config: cfg, Result: res}
	out.Model, err = logistic.New(cfg.GrowthRate, cfg.B0())
	if err != nil {
		return Outcome{}, err
	}
	out.Trajectory, err = out.Model.Solve(float64(res.Steps), cfg.SamplesPerStep)
	if err != nil {
		return Outcome{}, err
	}
	out.Comparison = logistic.Compare(res.Series, out.Model)
	if len(res.Series) >= 2 {
		if out.FittedRate, err = logistic.FitRate(res.Series, out.Model.B0); err != nil {
			logger.Warn("rate fit failed", "error", err)
			out.FittedRate = 0
		}
	}

	if err := writeOutputs(out, opts, logger); err != nil {
		return out, err
	}

	sum := report.Summarize(res)
	logger.Info("run finished",
		"p", sum.P,
		"total_burnt", sum.TotalBurnt,
		"steps", sum.Steps,
		"advances", res.Advances,
		"truncated", sum.Truncated,
		"rmse", out.Comparison.RMSE,
		"max_abs", out.Comparison.MaxAbs,
		"fitted_r", out.FittedRate,
	)
	if err := res.Err(); err != nil {
		logger.Warn("fire still burning at step bound", "error", err)
		if opts.Strict {
			return out, err
		}
	}
	return out, nil
}

func writeOutputs(out Outcome, opts RunOptions, logger *slog.Logger) error {
	res := out.Result
	if opts.ImagePath != "" {
		img := report.FinalImage(res.Final, report.Summarize(res), finalTitle, report.CellScale(out.Config.Size, imageTarget))
		if err := report.WritePNG(opts.ImagePath, img); err != nil {
			return err
		}
		logger.Info("final state written", "path", opts.ImagePath)
	}
	if opts.ChartPath != "" {
		if err := writeFile(opts.ChartPath, func(w io.Writer) error {
			return report.WriteComparisonChart(w, res.Series, out.Trajectory, res.P, out.Model.Rate)
		}); err != nil {
			return err
		}
		logger.Info("comparison chart written", "path", opts.ChartPath)
	}
	if opts.CSVPath != "" {
		if err := writeFile(opts.CSVPath, func(w io.Writer) error {
			return report.WriteSeriesCSV(w, res.Series, out.Model)
		}); err != nil {
			return err
		}
		logger.Info("series written", "path", opts.CSVPath)
	}
	if opts.Plot {
		plot := report.PlotASCII(res.Series, out.Model.Reference(len(res.Series)))
		if _, err := fmt.Fprintln(opts.Out, plot); err != nil {
			return fmt.Errorf("write plot: %w", err)
		}
	}
	return nil
}

func stepLogger(ctx context.Context, logger *slog.Logger) wildfire.StepObserver {
	return func(step int, snap *wildfire.Snapshot) {
		if !logger.Enabled(ctx, slog.LevelDebug) {
			return
		}
		logger.DebugContext(ctx, "step",
			"step", step,
			"burning", snap.Count(wildfire.Burning),
			"burnt_fraction", snap.BurntFraction(),
		)
	}
}

func chain(observers []wildfire.StepObserver) wildfire.StepObserver {
	return func(step int, snap *wildfire.Snapshot) {
		for _, o := range observers {
			o(step, snap)
		}
	}
}

func dumpConfig(path string, cfg wildfire.Config) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return writeFile(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
