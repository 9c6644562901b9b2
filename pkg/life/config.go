package life

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"lifegrid/internal/core"
	pcore "lifegrid/pkg/core"
)

// ErrInvalidConfig indicates a configuration that cannot start a run.
var ErrInvalidConfig = errors.New("life: invalid configuration")

// Config holds the parameters a driver needs to start a run.
type Config struct {
	Width       int
	Height      int
	Epochs      int
	Probability float64
	Seed        int64
}

// DefaultConfig returns the standard configuration: a 60×40 board seeded
// half alive and run for 200 generations.
func DefaultConfig() Config {
	return Config{Width: 60, Height: 40, Epochs: 200, Probability: 0.5, Seed: 42}
}

// FromMap populates a Config from a string map. Unparseable or out-of-range
// values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["epochs"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Epochs = parsed
		}
	}
	if v, ok := cfg["p"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Probability = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Epochs, "epochs", c.Epochs, "number of generations to run")
	fs.Float64Var(&c.Probability, "p", c.Probability, "probability that a cell starts alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial state")
}

// Validate reports whether the configuration can start a run.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Epochs < 0:
		return fmt.Errorf("%w: epochs %d", ErrInvalidConfig, c.Epochs)
	case c.Probability < 0 || c.Probability > 1:
		return fmt.Errorf("%w: probability %g outside [0,1]", ErrInvalidConfig, c.Probability)
	}
	return nil
}

// Parameters describes the configuration for HUD display.
func (c Config) Parameters() core.ParameterGroup {
	return core.ParameterGroup{
		Name: "Seeding",
		Params: []core.Parameter{
			core.FloatParam("p", "Live probability", c.Probability),
			core.Int64Param("seed", "Seed", c.Seed),
			core.IntParam("epochs", "Epochs", c.Epochs),
		},
	}
}

// RandomGrid returns a w×h grid where each cell is independently alive with
// probability p.
func RandomGrid(w, h int, p float64, seed int64) (*core.Grid, error) {
	g, err := core.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	pcore.FillBernoulli(pcore.NewRNG(seed), g.Cells(), p)
	return g, nil
}

// NewRandom validates cfg and builds an engine over a random initial state.
func NewRandom(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := RandomGrid(cfg.Width, cfg.Height, cfg.Probability, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return New(cfg.Width, cfg.Height, g)
}
