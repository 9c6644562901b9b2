// Package sweep runs many independently seeded games in parallel and
// summarises how each one evolved.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"

	"lifegrid/internal/core"
	"lifegrid/pkg/life"

	"golang.org/x/sync/errgroup"
)

// ErrNoSeeds indicates a sweep with nothing to run.
var ErrNoSeeds = errors.New("sweep: at least one seed is required")

// Options configures a sweep.
type Options struct {
	// Base supplies size, epochs and live probability; its Seed is replaced
	// per scenario.
	Base    life.Config
	Seeds   []int64
	Workers int
}

// Result summarises one seeded run.
type Result struct {
	Seed           int64
	Initial        int
	Final          int
	Peak           int
	PeakGeneration int
	// SettledAt is the first generation equal to its predecessor, or -1 if
	// the board was still changing when the run ended.
	SettledAt   int
	Generations int
}

// Seeds returns n consecutive seeds starting at first, or nil when n is
// not positive.
func Seeds(first int64, n int) []int64 {
	if n <= 0 {
		return nil
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = first + int64(i)
	}
	return out
}

// Run evaluates every seed and returns results ordered by seed. The first
// error cancels the remaining scenarios.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if len(opts.Seeds) == 0 {
		return nil, ErrNoSeeds
	}
	if err := opts.Base.Validate(); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(opts.Seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range opts.Seeds {
		g.Go(func() error {
			cfg := opts.Base
			cfg.Seed = seed
			res, err := runScenario(ctx, cfg)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slices.SortFunc(results, func(a, b Result) int {
		switch {
		case a.Seed < b.Seed:
			return -1
		case a.Seed > b.Seed:
			return 1
		}
		return 0
	})
	return results, nil
}

func runScenario(ctx context.Context, cfg life.Config) (Result, error) {
	e, err := life.NewRandom(cfg)
	if err != nil {
		return Result{}, err
	}
	prev := e.Grid()
	res := Result{Seed: cfg.Seed, Initial: prev.Alive(), SettledAt: -1}
	res.Peak = res.Initial

	for g := range e.Run(cfg.Epochs) {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		gen := e.Generation()
		if pop := g.Alive(); pop > res.Peak {
			res.Peak, res.PeakGeneration = pop, gen
		}
		if res.SettledAt < 0 && g.Equal(prev) {
			res.SettledAt = gen
		}
		prev = g
	}
	res.Final = prev.Alive()
	res.Generations = e.Generation()
	return res, nil
}

// Summary aggregates a set of results.
type Summary struct {
	Runs        int
	Settled     int
	MeanFinal   float64
	MaxPeak     int
	Extinctions int
}

// Summarize folds results into a Summary.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results)}
	if len(results) == 0 {
		return s
	}
	total := 0
	for _, r := range results {
		total += r.Final
		if r.SettledAt >= 0 {
			s.Settled++
		}
		if r.Final == 0 {
			s.Extinctions++
		}
		s.MaxPeak = max(s.MaxPeak, r.Peak)
	}
	s.MeanFinal = float64(total) / float64(len(results))
	return s
}

// Fraction returns the live fraction of a population on a board of size.
func Fraction(pop int, size core.Size) float64 {
	if size.Cells() == 0 {
		return 0
	}
	return float64(pop) / float64(size.Cells())
}
