//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"sparse-life/internal/core"
)

const (
	lineHeight   = 16
	panelPadding = 8
)

var (
	diagColor  = color.RGBA{R: 190, G: 30, B: 30, A: 255}
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 200}
	labelColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
)

// Overlay prints frame timing and per-step figures in the top-left corner.
type Overlay struct {
	sim  core.Sim
	Show bool
}

// NewOverlay constructs an overlay for sim, shown by default.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, Show: true}
}

// Draw renders the diagnostics onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, visible int) {
	if o == nil || !o.Show {
		return
	}
	tm := Timing{FPS: ebiten.ActualFPS(), TPS: ebiten.ActualTPS(), Visible: visible}
	face := basicfont.Face7x13
	for i, line := range DiagnosticsLines(o.sim.Parameters(), tm) {
		text.Draw(screen, line, face, panelPadding, panelPadding+lineHeight*(i+1), diagColor)
	}
}

// HUD shows the read-only configuration in a panel on the right edge.
type HUD struct {
	sim   core.Sim
	width int
	panel *ebiten.Image
	Show  bool
}

// NewHUD constructs a HUD for sim with a panel of the given width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Draw paints the panel anchored to the right edge of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.Show || h.width == 0 {
		return
	}
	lines := ParameterLines(h.sim.Parameters(), "Run")
	height := panelPadding*2 + lineHeight*len(lines)
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)
	face := basicfont.Face7x13
	for i, line := range lines {
		text.Draw(h.panel, line, face, panelPadding, panelPadding+lineHeight*(i+1)-4, labelColor)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-h.width), 0)
	screen.DrawImage(h.panel, op)
}
