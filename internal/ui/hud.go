//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 14
)

// HUD draws a translucent status panel over the top-left of the board.
type HUD struct {
	sim     core.Sim
	extra   []core.ParameterGroup
	visible bool
	panel   *ebiten.Image
	lines   []string
}

// NewHUD constructs a HUD for the provided simulation. extra groups are
// shown after the sim's own parameters.
func NewHUD(sim core.Sim, extra ...core.ParameterGroup) *HUD {
	return &HUD{sim: sim, extra: extra, visible: true}
}

// Update toggles visibility on H and refreshes the cached lines.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if h.visible {
		h.lines = hudLines(h.sim, collectGroups(h.sim, h.extra))
	}
}

// Draw renders the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, l := range h.lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}
	pw := width + 2*panelPadding
	ph := len(h.lines)*lineHeight + 2*panelPadding
	if h.panel == nil || h.panel.Bounds().Dx() != pw || h.panel.Bounds().Dy() != ph {
		h.panel = ebiten.NewImage(pw, ph)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	for i, l := range h.lines {
		y := panelPadding + (i+1)*lineHeight - 3
		text.Draw(h.panel, l, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
