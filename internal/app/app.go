//go:build ebiten

package app

import (
	"time"

	"sparse-life/internal/core"
	"sparse-life/internal/render"
	"sparse-life/internal/ui"
	"sparse-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	panSpeed = 8.0
	zoomStep = 1.1
	hudWidth = 220
)

type stepper interface {
	StepOnce() (life.Transition, bool)
}

// Game adapts a core simulation to the ebiten.Game interface. The sim owns
// the live set; the game only mirrors it on screen.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	camera  render.Camera

	pitch   int64
	width   int
	height  int
	seed    int64
	visible int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	hud := ui.NewHUD(sim, hudWidth)
	hud.Show = true
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(),
		overlay: ui.NewOverlay(sim),
		hud:     hud,
		camera:  render.NewCamera(cfg.Zoom),
		pitch:   int64(cfg.Pitch),
		width:   cfg.Width,
		height:  cfg.Height,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay.Show = !g.overlay.Show
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Show = !g.hud.Show
	}
	g.handleCamera()

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if s, ok := g.sim.(stepper); ok {
			s.StepOnce()
		}
	}
	g.sim.Tick()
	return nil
}

func (g *Game) handleCamera() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camera.Pan(-panSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camera.Pan(panSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camera.Pan(0, -panSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camera.Pan(0, panSpeed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.camera.ZoomBy(zoomStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.camera.ZoomBy(1 / zoomStep)
	}
	if _, wheel := ebiten.Wheel(); wheel != 0 {
		if wheel > 0 {
			g.camera.ZoomBy(zoomStep)
		} else {
			g.camera.ZoomBy(1 / zoomStep)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if !g.camera.CenterOn(g.sim.Live()) {
			g.camera.CenterX, g.camera.CenterY = 0, 0
		}
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.visible = g.painter.Draw(screen, g.sim.Live(), g.pitch, g.camera)
	g.overlay.Draw(screen, g.visible)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
