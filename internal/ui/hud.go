//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"cell-society/internal/core"
)

const (
	panelPadding = 12
	lineHeight   = 16
	baseline     = 18
)

// HUD renders a read-only status panel to the right of the grid.
type HUD struct {
	mgr   core.Manager
	cfg   core.Config
	width int
	panel *ebiten.Image
	lines []string
}

// NewHUD constructs a HUD of the given pixel width. A width of zero
// disables it.
func NewHUD(mgr core.Manager, cfg core.Config, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{mgr: mgr, cfg: cfg, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the panel text from the manager.
func (h *HUD) Update() {
	if h == nil || h.width == 0 {
		return
	}
	h.lines = Lines(h.mgr, h.cfg)
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width == 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i, line := range h.lines {
		y := panelPadding + baseline + i*lineHeight
		if y > height {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, fg)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
