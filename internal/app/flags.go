package app

import "github.com/spf13/pflag"

// Config represents the viewer's own command-line parameters. Simulation
// parameters are bound separately by config.Flags.
type Config struct {
	Scale    int
	TPS      int
	Rate     int
	HUDWidth int
	Paused   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 24, TPS: 60, Rate: 4, HUDWidth: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Rate, "rate-steps", c.Rate, "automaton steps per second")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
}

// Normalize replaces non-positive values with defaults.
func (c *Config) Normalize() {
	def := NewConfig()
	if c.Scale <= 0 {
		c.Scale = def.Scale
	}
	if c.TPS <= 0 {
		c.TPS = def.TPS
	}
	if c.Rate <= 0 {
		c.Rate = def.Rate
	}
	if c.HUDWidth < 0 {
		c.HUDWidth = 0
	}
}
