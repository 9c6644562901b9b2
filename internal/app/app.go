//go:build ebiten

package app

import (
	"iter"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	"lifegrid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life engine to the ebiten.Game interface. It pulls one
// generation per tick from the engine's Run sequence.
type Game struct {
	cfg     Config
	engine  *life.Engine
	next    func() (*core.Grid, bool)
	stop    func()
	painter *render.GridPainter
	hud     *ui.HUD

	paused   bool
	tickOnce bool
	done     bool
}

// New constructs a Game for the provided configuration.
func New(cfg Config) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		painter: render.NewGridPainter(cfg.Width, cfg.Height, render.DefaultPalette()),
	}
	if err := g.Reset(cfg.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset starts a fresh engine from a new random state with the given seed.
func (g *Game) Reset(seed int64) error {
	cfg := g.cfg.Config
	cfg.Seed = seed
	engine, err := life.NewRandom(cfg)
	if err != nil {
		return err
	}
	if g.stop != nil {
		g.stop()
	}
	g.cfg.Seed = seed
	g.engine = engine
	g.next, g.stop = iter.Pull(engine.Run(cfg.Epochs))
	g.hud = ui.NewHUD(engine, g.cfg.Config.Parameters())
	g.tickOnce = false
	g.done = false
	return nil
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.cfg.Seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	g.hud.Update()

	if g.done || (g.paused && !g.tickOnce) {
		return nil
	}
	g.tickOnce = false
	if _, ok := g.next(); !ok {
		g.done = true
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.engine.Cells(), g.cfg.Scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.engine.Size()
	return s.W * g.cfg.Scale, s.H * g.cfg.Scale
}
