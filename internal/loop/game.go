// Package loop provides the game controller: one Tick per frame advances the
// world, draws it onto a draw.Surface and drives the HUD.
package loop

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/keyrunner/internal/draw"
	"github.com/tomz197/keyrunner/internal/input"
	"github.com/tomz197/keyrunner/internal/loop/config"
	"github.com/tomz197/keyrunner/internal/object"
	"github.com/tomz197/keyrunner/internal/physics"
)

// overlayPanel is the challenge panel centered on the surface.
var overlayPanel = draw.Rect{
	X: (config.SurfaceWidth - config.OverlayWidth) / 2,
	Y: (config.SurfaceHeight - config.OverlayHeight) / 2,
	W: config.OverlayWidth,
	H: config.OverlayHeight,
}

// Options configures a Game.
type Options struct {
	Rand   *rand.Rand  // Defaults to a time-seeded source
	Logger *log.Logger // Defaults to discarding
}

// Game owns the State and advances it one tick at a time.
// It is not safe for concurrent use.
type Game struct {
	state   *State
	surface draw.Surface
	display Display
	rand    *rand.Rand
	logger  *log.Logger
}

// New creates a game on the title screen.
func New(surface draw.Surface, display Display, opts Options) *Game {
	if display == nil {
		display = nopDisplay{}
	}
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		state:   NewState(),
		surface: surface,
		display: display,
		rand:    r,
		logger:  logger,
	}
	g.updateHUD()
	g.display.SetVisible(ElementStartPrompt, true)
	g.display.SetVisible(ElementGameOver, false)
	return g
}

// State returns the current phase.
func (g *Game) State() GameState { return g.state.GameState }

// Score returns the current score.
func (g *Game) Score() int { return g.state.Score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.state.Lives }

// World exposes the mutable state, mainly for tests.
func (g *Game) World() *State { return g.state }

// Start begins a fresh run, discarding everything from the previous one.
func (g *Game) Start() {
	g.state.Reset()
	g.state.GameState = GameStateRunning
	g.display.SetVisible(ElementGameOver, false)
	g.display.SetVisible(ElementStartPrompt, false)
	g.updateHUD()
	p := g.state.Player
	g.logger.Debug("game started",
		"jumpTicks", physics.JumpTicks(p.LaunchVelocity, p.Gravity),
		"jumpApex", physics.JumpApex(p.LaunchVelocity, p.Gravity))
}

// OnKeyDown handles one key press.
func (g *Game) OnKeyDown(key input.Key) {
	switch key {
	case input.KeySpace:
		switch g.state.GameState {
		case GameStateNotStarted, GameStateGameOver:
			g.Start()
		case GameStateRunning:
			g.state.Player.Jump()
		}
	case input.KeyW, input.KeyA, input.KeyS, input.KeyD:
		if g.state.GameState == GameStateRunning {
			g.pressDirection(directionForKey(key))
		}
	}
}

func directionForKey(key input.Key) object.Direction {
	switch key {
	case input.KeyA:
		return object.DirA
	case input.KeyS:
		return object.DirS
	case input.KeyD:
		return object.DirD
	default:
		return object.DirW
	}
}

// pressDirection feeds the challenge. Completing it defeats every enemy.
func (g *Game) pressDirection(d object.Direction) {
	_, completed := g.state.Challenge.Press(d)
	if !completed {
		return
	}
	ctx := g.updateContext()
	defeated := 0
	for _, e := range g.state.Enemies {
		if !e.Kill(config.EnemyDeathTTL) {
			continue
		}
		defeated++
		c := e.Box()
		object.SpawnBurst(ctx, c.X+c.W/2, c.Y+c.H/2, config.BurstParticles, config.BurstSpeed, config.BurstLifetime)
	}
	g.logger.Debug("challenge completed", "defeated", defeated)
}

func (g *Game) updateContext() object.UpdateContext {
	return object.UpdateContext{Spawner: g.state, Rand: g.rand}
}

// Tick advances the world by one frame and redraws it. It does nothing
// unless the game is running.
func (g *Game) Tick() {
	s := g.state
	if s.GameState != GameStateRunning {
		return
	}

	ctx := g.updateContext()
	dctx := object.DrawContext{Surface: g.surface}

	g.surface.Clear()

	s.Player.Update(ctx)
	s.Player.Draw(dctx)

	spawnObstacle, spawnEnemy := s.Spawns.Advance()
	if spawnObstacle {
		s.Obstacles = append(s.Obstacles, object.NewObstacle(config.SurfaceWidth, config.GroundY, config.ObstacleSpeed))
	}
	if spawnEnemy {
		g.spawnEnemy()
	}

	if g.updateObstacles(ctx, dctx) || g.updateEnemies(ctx, dctx) {
		return
	}

	kept := s.Particles[:0]
	for _, p := range s.Particles {
		if p.Update(ctx) {
			object.ReleaseObject(p)
			continue
		}
		p.Draw(dctx)
		kept = append(kept, p)
	}
	s.Particles = kept
	s.FlushSpawned()

	if s.Challenge.Active && s.AliveEnemies() > 0 {
		s.Challenge.DrawOverlay(dctx, overlayPanel)
	}

	s.Score += config.ScorePerTick
	g.updateHUD()
}

// spawnEnemy adds an enemy at the right edge and replaces the challenge.
func (g *Game) spawnEnemy() {
	variant := g.rand.IntN(config.EnemyVariants)
	g.state.Enemies = append(g.state.Enemies,
		object.NewEnemy(config.SurfaceWidth, config.GroundY, config.EnemySpeed, variant))
	seq := object.RandomSequence(g.rand, config.SequenceMinLength, config.SequenceMaxLength)
	g.state.Challenge.Activate(seq)
	g.logger.Debug("enemy spawned", "variant", variant, "sequence", seq)
}

// updateObstacles moves, draws and collides obstacles. Returns true if the
// game ended.
func (g *Game) updateObstacles(ctx object.UpdateContext, dctx object.DrawContext) bool {
	s := g.state
	kept := s.Obstacles[:0]
	for i, o := range s.Obstacles {
		if o.Update(ctx) {
			continue
		}
		o.Draw(dctx)
		if hitsPlayer(s.Player, o) {
			if g.loseLife("obstacle") {
				s.Obstacles = append(kept, s.Obstacles[i+1:]...)
				return true
			}
			continue
		}
		kept = append(kept, o)
	}
	s.Obstacles = kept
	return false
}

// updateEnemies advances living and dead enemies. Returns true if the game
// ended.
func (g *Game) updateEnemies(ctx object.UpdateContext, dctx object.DrawContext) bool {
	s := g.state
	culledAlive := false
	kept := s.Enemies[:0]
	for i, e := range s.Enemies {
		wasAlive := e.Alive
		if e.Update(ctx) {
			culledAlive = culledAlive || wasAlive
			continue
		}
		e.Draw(dctx)
		if e.Alive && hitsPlayer(s.Player, e) {
			s.Challenge.Deactivate()
			if g.loseLife("enemy") {
				s.Enemies = append(kept, s.Enemies[i+1:]...)
				return true
			}
			continue
		}
		kept = append(kept, e)
	}
	s.Enemies = kept
	if culledAlive && s.AliveEnemies() == 0 {
		s.Challenge.Deactivate()
	}
	return false
}

// loseLife takes one life and ends the game on the last. Returns true if
// the game ended.
func (g *Game) loseLife(cause string) bool {
	s := g.state
	if s.Lives > 0 {
		s.Lives--
	}
	g.logger.Debug("life lost", "cause", cause, "lives", s.Lives)
	if s.Lives > 0 {
		return false
	}
	g.gameOver()
	return true
}

// gameOver freezes the game and renders the final score.
func (g *Game) gameOver() {
	s := g.state
	s.GameState = GameStateGameOver
	s.Challenge.Deactivate()
	g.updateHUD()

	cx := float64(config.SurfaceWidth) / 2
	cy := float64(config.SurfaceHeight) / 2
	g.surface.Clear()
	g.surface.DrawText(cx, cy-40, "GAME OVER")
	g.surface.DrawText(cx, cy, fmt.Sprintf("Final score: %d", s.Score))
	g.surface.DrawText(cx, cy+40, "Press SPACE to restart")

	g.display.SetText(ElementGameOver, fmt.Sprintf("GAME OVER - Score: %d", s.Score))
	g.display.SetVisible(ElementGameOver, true)
	g.logger.Debug("game over", "score", s.Score)
}

func (g *Game) updateHUD() {
	g.display.SetText(ElementScore, fmt.Sprintf("Score: %d", g.state.Score))
	g.display.SetText(ElementLives, fmt.Sprintf("Lives: %d", g.state.Lives))
}
