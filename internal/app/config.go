package app

import (
	"flag"

	"lifegrid/pkg/life"
)

// Config represents the command-line parameters for the GUI driver.
type Config struct {
	life.Config

	Scale int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Config: life.DefaultConfig(), Scale: 10, TPS: 10}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.Config.Bind(fs)
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
}
