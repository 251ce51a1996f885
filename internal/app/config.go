package app

import (
	"flag"

	"github.com/caarlos0/env/v11"
)

// Config represents the parameters of the GUI application. LIFE_* environment
// variables override the built-in defaults, and flags override both.
type Config struct {
	Width   int    `env:"LIFE_WIDTH"`
	Height  int    `env:"LIFE_HEIGHT"`
	Pattern string `env:"LIFE_PATTERN"`
	Scale   int    `env:"LIFE_SCALE"`
	TPS     int    `env:"LIFE_TPS"`
	Seed    int64  `env:"LIFE_SEED"`
}

// NewConfig returns a Config populated with defaults and environment values.
// A malformed LIFE_* variable is an error, just like a malformed flag.
func NewConfig() (*Config, error) {
	c := &Config{Width: 64, Height: 64, Pattern: "default", Scale: 8, TPS: 10, Seed: 42}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern name")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
}
