package term

import (
	"context"
	"iter"
	"time"

	"lifegrid/internal/core"
	"lifegrid/pkg/life"

	"github.com/gdamore/tcell/v2"
)

const keyHelp = "space pause  n step  q quit"

// Driver runs an engine for a fixed number of epochs, rendering every
// generation after it is computed.
type Driver struct {
	screen   tcell.Screen
	renderer *Renderer
	pacer    *core.FixedStep

	// Hold keeps the final frame on screen until a quit key is pressed.
	Hold bool
}

// NewDriver returns a driver stepping at tps generations per second.
func NewDriver(screen tcell.Screen, tps int) *Driver {
	return &Driver{
		screen:   screen,
		renderer: NewRenderer(screen),
		pacer:    core.NewFixedStep(tps),
	}
}

// Renderer exposes the renderer for style tweaks.
func (d *Driver) Renderer() *Renderer { return d.renderer }

// Run draws generation 0, then advances e through Run(epochs). It returns
// nil once the epochs are exhausted or the user quits, and ctx.Err() if ctx
// is cancelled first.
func (d *Driver) Run(ctx context.Context, e *life.Engine, epochs int) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go d.screen.ChannelEvents(events, quit)

	next, stop := iter.Pull(e.Run(epochs))
	defer stop()

	current := e.Grid()
	d.renderer.Render(current, e.Generation(), keyHelp)

	ticker := time.NewTicker(max(d.pacer.Interval()/4, time.Millisecond))
	defer ticker.Stop()

	paused, finished := false, false
	for {
		step := false
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
					ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return nil
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					paused = !paused
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'n':
					step = true
				}
			case *tcell.EventResize:
				d.screen.Sync()
				d.renderer.Render(current, e.Generation(), keyHelp)
			}
		case <-ticker.C:
			step = !paused && d.pacer.ShouldStep()
		}

		if !step || finished {
			continue
		}
		g, ok := next()
		if !ok {
			finished = true
			if !d.Hold {
				return nil
			}
			d.renderer.Render(current, e.Generation(), "done  q quit")
			continue
		}
		current = g
		d.renderer.Render(current, e.Generation(), keyHelp)
	}
}
