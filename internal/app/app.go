//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"wildfire/internal/core"
	"wildfire/internal/render"
	"wildfire/internal/sims/wildfire"
	"wildfire/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the fire automaton to the ebiten.Game interface.
type Game struct {
	fire    *wildfire.Fire
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep
	palette []color.RGBA
	logger  *slog.Logger

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	reported bool
}

// New constructs a Game for the provided fire.
func New(fire *wildfire.Fire, cfg *Config, logger *slog.Logger) *Game {
	size := fire.Size()
	return &Game{
		fire:     fire,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(fire, cfg.HUDWidth),
		pacer:    core.NewFixedStep(cfg.Rate),
		palette:  fire.Palette(),
		logger:   logger,
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		paused:   cfg.Paused,
	}
}

// Reset re-ignites the seeds with the provided seed.
func (g *Game) Reset(seed int64) {
	g.fire.Reset(seed)
	g.tickOnce = false
	g.reported = false
	g.logger.Info("reset", "seed", g.fire.Seed())
}

// Update handles per-frame logic and advances the automaton at the
// configured step rate.
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
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.fire.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(core.EntropySeed())
	}

	g.hud.Update(g.gridWidth())
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.hud.Nudge(0, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.hud.Nudge(0, -1)
	}

	due := g.pacer.ShouldStep(time.Now())
	if (!g.paused && due) || g.tickOnce {
		g.fire.Step()
		g.tickOnce = false
	}
	if g.fire.Extinct() && !g.reported {
		g.reported = true
		snap := g.fire.Snapshot()
		g.logger.Info("fire extinct",
			"steps", g.fire.StepIndex()+1,
			"burnt", snap.Count(wildfire.Burnt),
			"burnt_fraction", snap.BurntFraction(),
		)
	}
	g.hud.SetStatus(g.status())
	return nil
}

func (g *Game) status() string {
	switch {
	case g.fire.Extinct():
		return fmt.Sprintf("step %d  extinct", g.fire.StepIndex())
	case g.paused:
		return fmt.Sprintf("step %d  paused", g.fire.StepIndex())
	default:
		return fmt.Sprintf("step %d", g.fire.StepIndex())
	}
}

// Draw renders the grid and the parameter panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.fire.Cells(), g.palette, g.scale)
	g.hud.Draw(screen, g.gridWidth())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.fire.Size()
	return g.gridWidth() + g.hudWidth, s.H * g.scale
}

func (g *Game) gridWidth() int { return g.fire.Size().W * g.scale }
