//go:build ebiten

package app

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"cell-society/internal/core"
	"cell-society/internal/render"
	"cell-society/internal/ui"
)

// Game adapts a simulation manager to the ebiten.Game interface.
type Game struct {
	mgr     core.Manager
	cfg     core.Config
	painter *render.GridPainter
	pacer   *core.FixedStep
	hud     *ui.HUD

	scale    int
	paused   bool
	tickOnce bool
	halted   bool
}

// New constructs a Game for an initialized manager. cfg is kept so the
// simulation can be reset.
func New(mgr core.Manager, cfg core.Config, opts Options) *Game {
	opts = opts.normalized()
	size := mgr.Size()
	return &Game{
		mgr:     mgr,
		cfg:     cfg,
		painter: render.NewGridPainter(size.Rows, size.Cols),
		pacer:   core.NewFixedStep(opts.TPS),
		hud:     ui.NewHUD(mgr, cfg, opts.HUDWidth),
		scale:   opts.Scale,
	}
}

// Run opens the window and blocks until it is closed. Quitting is not an
// error.
func Run(mgr core.Manager, cfg core.Config, opts Options) error {
	g := New(mgr, cfg, opts)
	title := mgr.Name()
	if cfg.Title != "" {
		title += " - " + cfg.Title
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.Layout(0, 0))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Reset reinitializes the simulation from its configuration.
func (g *Game) Reset() error {
	if err := g.mgr.Initialize(g.cfg); err != nil {
		return err
	}
	g.tickOnce = false
	g.halted = false
	return nil
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.pacer.SetTPS(faster(g.pacer.TPS()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.pacer.SetTPS(slower(g.pacer.TPS()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(); err != nil {
			return err
		}
	}
	defer g.hud.Update()

	if g.halted {
		return nil
	}
	if g.tickOnce || (!g.paused && g.pacer.ShouldStep()) {
		g.mgr.Step()
		g.tickOnce = false
		if g.mgr.IsStable() {
			g.halted = true
			logrus.WithField("generation", g.mgr.Generation()).Info("simulation stable, halting")
		}
	}
	return nil
}

// Draw renders the current simulation colors and the side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.mgr.Colors(), g.scale)
	s := g.mgr.Size()
	g.hud.Draw(screen, s.Cols*g.scale, s.Rows*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.mgr.Size()
	return s.Cols*g.scale + g.hud.Width(), s.Rows * g.scale
}
