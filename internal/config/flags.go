package config

import (
	"fmt"

	"github.com/spf13/pflag"

	"wildfire/internal/sims/wildfire"
)

// Flag names bound by Flags.
const (
	FlagConfig   = "config"
	FlagSize     = "size"
	FlagP        = "p"
	FlagSeeds    = "seeds"
	FlagMaxSteps = "max-steps"
	FlagRate     = "rate"
	FlagB0       = "b0"
	FlagSamples  = "samples-per-step"
	FlagSeed     = "seed"
	FlagSet      = "set"
)

// Flags holds the raw command-line values for a run configuration.
type Flags struct {
	Path     string
	size     int
	p        float64
	seeds    string
	maxSteps int
	rate     float64
	b0       float64
	samples  int
	seed     int64
	set      map[string]string
}

// Bind attaches the configuration flags to fs, advertising the defaults.
func (f *Flags) Bind(fs *pflag.FlagSet) {
	def := wildfire.DefaultConfig()
	fs.StringVarP(&f.Path, FlagConfig, "c", "", "YAML scenario file")
	fs.IntVarP(&f.size, FlagSize, "n", def.Size, "grid side length")
	fs.Float64VarP(&f.p, FlagP, "p", def.SpreadChance, "spread probability per burning neighbour")
	fs.StringVar(&f.seeds, FlagSeeds, "", `initial fire cells as "row,col;row,col" (default: centre)`)
	fs.IntVar(&f.maxSteps, FlagMaxSteps, def.MaxSteps, "bound on recorded steps")
	fs.Float64VarP(&f.rate, FlagRate, "r", def.GrowthRate, "logistic growth rate")
	fs.Float64Var(&f.b0, FlagB0, 0, "logistic initial fraction (default 1/n²)")
	fs.IntVar(&f.samples, FlagSamples, def.SamplesPerStep, "logistic samples per discrete step")
	fs.Int64Var(&f.seed, FlagSeed, 0, "random seed (0 draws one from entropy)")
	fs.StringToStringVar(&f.set, FlagSet, nil, "extra overrides as key=value (n, p, seeds, max_steps, r, b0, samples_per_step, seed)")
}

// Resolve builds the configuration: defaults, then the scenario file, then
// every flag the user changed, then --set overrides. The result is validated.
func (f *Flags) Resolve(fs *pflag.FlagSet) (wildfire.Config, error) {
	cfg := wildfire.DefaultConfig()
	if f.Path != "" {
		loaded, err := Load(f.Path)
		if err != nil {
			return wildfire.Config{}, err
		}
		cfg = loaded
	}

	if fs.Changed(FlagSize) {
		cfg.Size = f.size
	}
	if fs.Changed(FlagP) {
		cfg.SpreadChance = f.p
	}
	if fs.Changed(FlagSeeds) {
		seeds, err := wildfire.ParseSeeds(f.seeds)
		if err != nil {
			return wildfire.Config{}, fmt.Errorf("--%s: %w", FlagSeeds, err)
		}
		cfg.Seeds = seeds
	}
	if fs.Changed(FlagMaxSteps) {
		cfg.MaxSteps = f.maxSteps
	}
	if fs.Changed(FlagRate) {
		cfg.GrowthRate = f.rate
	}
	if fs.Changed(FlagB0) {
		cfg.InitialFraction = f.b0
	}
	if fs.Changed(FlagSamples) {
		cfg.SamplesPerStep = f.samples
	}
	if fs.Changed(FlagSeed) {
		cfg.Seed = f.seed
	}

	cfg, err := cfg.WithOverrides(f.set)
	if err != nil {
		return wildfire.Config{}, fmt.Errorf("--%s: %w", FlagSet, err)
	}
	if err := cfg.Validate(); err != nil {
		return wildfire.Config{}, err
	}
	return cfg, nil
}
