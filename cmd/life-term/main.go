package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"lifegrid/internal/term"
	"lifegrid/pkg/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := life.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	tps := flag.Int("tps", 10, "generations per second")
	hold := flag.Bool("hold", true, "keep the final generation on screen until q is pressed")
	invert := flag.Bool("invert", false, "draw dark cells on a light background")
	flag.Parse()

	engine, err := life.NewRandom(cfg)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	driver := term.NewDriver(screen, *tps)
	driver.Hold = *hold
	if *invert {
		driver.Renderer().Invert()
	}
	err = driver.Run(ctx, engine, cfg.Epochs)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	fmt.Printf("stopped at generation %d with %d live cells\n", engine.Generation(), engine.Population())
}
