// Package config resolves a wildfire.Config from, in increasing precedence,
// the built-in defaults, an optional YAML scenario file, command-line flags
// and key=value overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"wildfire/internal/core"
	"wildfire/internal/sims/wildfire"
)

// Cell is a seed coordinate in a scenario file.
type Cell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Scenario is the on-disk form of a run configuration.
type Scenario struct {
	Size            int     `yaml:"size"`
	SpreadChance    float64 `yaml:"spread_chance"`
	Seeds           []Cell  `yaml:"seeds"`
	MaxSteps        int     `yaml:"max_steps"`
	GrowthRate      float64 `yaml:"growth_rate"`
	InitialFraction float64 `yaml:"initial_fraction"`
	SamplesPerStep  int     `yaml:"samples_per_step"`
	Seed            int64   `yaml:"seed"`
}

// FromConfig converts cfg into its file form.
func FromConfig(cfg wildfire.Config) Scenario {
	s := Scenario{
		Size:            cfg.Size,
		SpreadChance:    cfg.SpreadChance,
		MaxSteps:        cfg.MaxSteps,
		GrowthRate:      cfg.GrowthRate,
		InitialFraction: cfg.InitialFraction,
		SamplesPerStep:  cfg.SamplesPerStep,
		Seed:            cfg.Seed,
	}
	for _, c := range cfg.Seeds {
		s.Seeds = append(s.Seeds, Cell{Row: c.Row, Col: c.Col})
	}
	return s
}

// Config converts the scenario back into a run configuration.
func (s Scenario) Config() wildfire.Config {
	cfg := wildfire.Config{
		Size:            s.Size,
		SpreadChance:    s.SpreadChance,
		MaxSteps:        s.MaxSteps,
		GrowthRate:      s.GrowthRate,
		InitialFraction: s.InitialFraction,
		SamplesPerStep:  s.SamplesPerStep,
		Seed:            s.Seed,
	}
	for _, c := range s.Seeds {
		cfg.Seeds = append(cfg.Seeds, core.Coord{Row: c.Row, Col: c.Col})
	}
	return cfg
}

// Parse decodes YAML over the defaults. Fields absent from data keep their
// default values; unknown fields are rejected.
func Parse(data []byte) (wildfire.Config, error) {
	s := FromConfig(wildfire.DefaultConfig())
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return wildfire.Config{}, fmt.Errorf("decode scenario: %w", err)
	}
	return s.Config(), nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (wildfire.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return wildfire.Config{}, fmt.Errorf("read scenario: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return wildfire.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes cfg as a scenario file.
func Marshal(cfg wildfire.Config) ([]byte, error) {
	return yaml.Marshal(FromConfig(cfg))
}
