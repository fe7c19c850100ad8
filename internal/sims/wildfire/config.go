package wildfire

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"wildfire/internal/core"
	"wildfire/internal/logistic"
)

// Config holds every parameter of a wildfire run and its logistic reference.
type Config struct {
	// Size is the side length n of the n×n grid.
	Size int
	// SpreadChance is the per-edge ignition probability p.
	SpreadChance float64
	// Seeds lists the cells burning at step 0. Empty means the grid centre.
	Seeds []core.Coord
	// MaxSteps bounds the number of recorded steps.
	MaxSteps int

	// GrowthRate is r in dB/dt = r·B·(1−B).
	GrowthRate float64
	// InitialFraction is B0. Zero means 1/n².
	InitialFraction float64
	// SamplesPerStep is the oversampling factor of the continuous curve.
	SamplesPerStep int

	// Seed initialises the random source. Zero asks the caller to draw one
	// from process entropy.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:           20,
		SpreadChance:   0.4,
		MaxSteps:       100,
		GrowthRate:     logistic.DefaultRate,
		SamplesPerStep: logistic.DefaultSamplesPerStep,
	}
}

// SeedCells returns the configured seeds, defaulting to the grid centre.
func (c Config) SeedCells() []core.Coord {
	if len(c.Seeds) == 0 {
		return []core.Coord{{Row: c.Size / 2, Col: c.Size / 2}}
	}
	return append([]core.Coord(nil), c.Seeds...)
}

// B0 returns the initial fraction of the logistic reference.
func (c Config) B0() float64 {
	if c.InitialFraction != 0 {
		return c.InitialFraction
	}
	return logistic.InitialFraction(c.Size)
}

// Validate checks every parameter before any simulation work starts.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("grid size %d must be positive: %w", c.Size, core.ErrInvalidParameter)
	}
	if err := checkProbability(c.SpreadChance); err != nil {
		return err
	}
	for _, s := range c.SeedCells() {
		if s.Row < 0 || s.Row >= c.Size || s.Col < 0 || s.Col >= c.Size {
			return fmt.Errorf("seed %v outside %dx%d grid: %w", s, c.Size, c.Size, core.ErrInvalidParameter)
		}
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("max steps %d must be positive: %w", c.MaxSteps, core.ErrInvalidParameter)
	}
	if c.SamplesPerStep <= 0 {
		return fmt.Errorf("samples per step %d must be positive: %w", c.SamplesPerStep, core.ErrInvalidParameter)
	}
	if _, err := logistic.New(c.GrowthRate, c.B0()); err != nil {
		return err
	}
	return nil
}

// Override keys accepted by WithOverrides.
const (
	KeySize           = "n"
	KeySpreadChance   = "p"
	KeySeeds          = "seeds"
	KeyMaxSteps       = "max_steps"
	KeyGrowthRate     = "r"
	KeyInitialFrac    = "b0"
	KeySamplesPerStep = "samples_per_step"
	KeySeed           = "seed"
)

// WithOverrides returns a copy of c with the flag-style key/value pairs
// applied. Unknown keys and unparsable values are errors. Range checks are
// left to Validate.
func (c Config) WithOverrides(kv map[string]string) (Config, error) {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := strings.TrimSpace(kv[k])
		var err error
		switch k {
		case KeySize:
			c.Size, err = strconv.Atoi(v)
		case KeySpreadChance:
			c.SpreadChance, err = strconv.ParseFloat(v, 64)
		case KeySeeds:
			c.Seeds, err = ParseSeeds(v)
		case KeyMaxSteps:
			c.MaxSteps, err = strconv.Atoi(v)
		case KeyGrowthRate:
			c.GrowthRate, err = strconv.ParseFloat(v, 64)
		case KeyInitialFrac:
			c.InitialFraction, err = strconv.ParseFloat(v, 64)
		case KeySamplesPerStep:
			c.SamplesPerStep, err = strconv.Atoi(v)
		case KeySeed:
			c.Seed, err = strconv.ParseInt(v, 10, 64)
		default:
			return c, fmt.Errorf("unknown parameter %q: %w", k, core.ErrInvalidParameter)
		}
		if err != nil {
			return c, fmt.Errorf("parameter %s=%q: %v: %w", k, v, err, core.ErrInvalidParameter)
		}
	}
	return c, nil
}

// ParseSeeds parses "row,col;row,col" into coordinates. An empty string
// yields no seeds.
func ParseSeeds(s string) ([]core.Coord, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []core.Coord
	for _, part := range strings.Split(s, ";") {
		fields := strings.Split(strings.TrimSpace(part), ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("seed %q must be row,col: %w", part, core.ErrInvalidParameter)
		}
		row, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("seed %q: %v: %w", part, err, core.ErrInvalidParameter)
		}
		col, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("seed %q: %v: %w", part, err, core.ErrInvalidParameter)
		}
		out = append(out, core.Coord{Row: row, Col: col})
	}
	return out, nil
}

// FormatSeeds is the inverse of ParseSeeds.
func FormatSeeds(seeds []core.Coord) string {
	parts := make([]string, len(seeds))
	for i, s := range seeds {
		parts[i] = fmt.Sprintf("%d,%d", s.Row, s.Col)
	}
	return strings.Join(parts, ";")
}
