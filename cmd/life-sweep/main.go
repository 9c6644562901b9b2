package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/sweep"
	"lifegrid/pkg/life"
)

func main() {
	cfg := life.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	runs := flag.Int("runs", 32, "number of seeds to simulate, starting at -seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	fmt.Printf("Sweeping %d seeds (%d workers, %dx%d, %d epochs, p=%.2f)\n",
		*runs, *workers, cfg.Width, cfg.Height, cfg.Epochs, cfg.Probability)

	start := time.Now()
	results, err := sweep.Run(context.Background(), sweep.Options{
		Base:    cfg,
		Seeds:   sweep.Seeds(cfg.Seed, *runs),
		Workers: *workers,
	})
	if err != nil {
		log.Fatal(err)
	}

	size := core.Size{W: cfg.Width, H: cfg.Height}
	fmt.Printf("%8s %8s %8s %7s %8s %8s %8s\n", "seed", "initial", "final", "final%", "peak", "peakGen", "settled")
	for _, r := range results {
		settled := "-"
		if r.SettledAt >= 0 {
			settled = fmt.Sprint(r.SettledAt)
		}
		fmt.Printf("%8d %8d %8d %6.1f%% %8d %8d %8s\n",
			r.Seed, r.Initial, r.Final, 100*sweep.Fraction(r.Final, size), r.Peak, r.PeakGeneration, settled)
	}

	s := sweep.Summarize(results)
	fmt.Printf("\n%d runs in %v: %d settled, %d extinct, mean final %.1f, max peak %d\n",
		s.Runs, time.Since(start).Round(time.Millisecond), s.Settled, s.Extinctions, s.MeanFinal, s.MaxPeak)
}
