//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"lifegrid/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	game, err := app.New(*cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(fmt.Sprintf("life %dx%d p=%.2f", cfg.Width, cfg.Height, cfg.Probability))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
