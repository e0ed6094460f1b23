// Package game runs an arena World inside an ebiten window: it feeds keyboard
// input into each tick, draws the result and ends the session.
package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"arenashooter/arena"
)

// Game implements ebiten.Game for one session.
type Game struct {
	world    *arena.World
	input    InputProvider
	renderer *Renderer
	logger   *log.Logger
	monitor  *TPSMonitor

	showHitboxes bool

	// When the world ended; the banner stays up for arena.GameOverDelay
	overAt time.Time

	now func() time.Time
	tps func() float64
}

// NewGame creates a session over world, reading the keyboard.
func NewGame(world *arena.World, renderer *Renderer, logger *log.Logger) *Game {
	now := time.Now()
	return &Game{
		world:    world,
		input:    NewKeyboardInput(),
		renderer: renderer,
		logger:   logger,
		monitor:  NewTPSMonitor(now),
		now:      time.Now,
		tps:      ebiten.ActualTPS,
	}
}

// World returns the world being played.
func (g *Game) World() *arena.World {
	return g.world
}

// Update advances the world by one tick. It returns ebiten.Termination when
// the player quits, or once the game-over banner has been shown long enough.
func (g *Game) Update() error {
	now := g.now()
	in, ctl := g.input.Poll()
	g.handleControls(ctl)

	if g.world.State == arena.GameOver {
		if in.Quit || now.Sub(g.overAt) >= arena.GameOverDelay {
			g.logger.Info("session finished", "score", g.world.Score.Value, "ticks", g.world.Tick)
			return ebiten.Termination
		}
		return nil
	}

	ev := g.world.Step(in)
	switch {
	case ev.Quit:
		g.logger.Info("quit", "score", g.world.Score.Value, "tick", g.world.Tick)
		return ebiten.Termination
	case ev.GameOver:
		g.overAt = now
		g.logger.Info("game over", "score", g.world.Score.Value, "tick", g.world.Tick)
		return nil
	}

	if ev.Fired > 0 {
		g.logger.Debug("fired", "facing", g.world.Player.Facing, "in_flight", len(g.world.Projectiles))
	}
	if ev.Destroyed > 0 {
		g.logger.Debug("hazard destroyed",
			"count", ev.Destroyed,
			"score", g.world.Score.Value,
			"remaining", len(g.world.Hazards))
	}

	if tps := g.tps(); g.monitor.Check(now, tps) {
		g.logger.Warn("update rate dropped", "tps", fmt.Sprintf("%.1f", tps), "target", arena.TicksPerSecond)
	}
	return nil
}

func (g *Game) handleControls(ctl Controls) {
	if ctl.ToggleHitboxes {
		g.showHitboxes = !g.showHitboxes
		g.logger.Debug("hitboxes", "shown", g.showHitboxes)
	}
	if ctl.ToggleFullscreen {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}

// Draw renders the game screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.ShowHitboxes = g.showHitboxes
	g.renderer.Draw(screen, g.world)
}

// Layout fixes the logical canvas to the arena; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return arena.Width, arena.Height
}
