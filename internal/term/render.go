// Package term draws life grids into a terminal with tcell and drives runs
// from the keyboard.
package term

import (
	"fmt"

	"lifegrid/internal/core"

	"github.com/gdamore/tcell/v2"
)

const (
	aliveRune = '█'
	deadRune  = ' '
)

// Renderer paints one grid per frame, one terminal cell per grid cell, with
// a status line underneath.
type Renderer struct {
	screen tcell.Screen
	alive  tcell.Style
	dead   tcell.Style
	status tcell.Style
}

// NewRenderer returns a renderer drawing into screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	base := tcell.StyleDefault.Background(tcell.ColorReset)
	return &Renderer{
		screen: screen,
		alive:  base.Foreground(tcell.ColorGreen),
		dead:   base,
		status: base.Foreground(tcell.ColorGray),
	}
}

// Invert switches to dark cells on a light background. Calling it again
// has no further effect.
func (r *Renderer) Invert() {
	r.alive = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	r.dead = tcell.StyleDefault.Background(tcell.ColorWhite)
}

// Render draws g clipped to the screen and shows it.
func (r *Renderer) Render(g *core.Grid, generation int, note string) {
	r.screen.Clear()
	sw, sh := r.screen.Size()
	cells := g.Cells()
	for y := 0; y < g.Height() && y < sh; y++ {
		for x := 0; x < g.Width() && x < sw; x++ {
			if cells[g.Index(x, y)] == core.Alive {
				r.screen.SetContent(x, y, aliveRune, nil, r.alive)
			} else {
				r.screen.SetContent(x, y, deadRune, nil, r.dead)
			}
		}
	}
	line := fmt.Sprintf("gen %d  pop %d", generation, g.Alive())
	if note != "" {
		line += "  " + note
	}
	if g.Height() < sh {
		r.drawText(0, g.Height(), line)
	}
	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, s string) {
	for i, c := range []rune(s) {
		r.screen.SetContent(x+i, y, c, nil, r.status)
	}
}
