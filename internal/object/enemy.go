package object

import (
	"github.com/tomz197/keyrunner/internal/draw"
	"github.com/tomz197/keyrunner/internal/physics"
)

// Enemy walks toward the player until hit or defeated by the key challenge.
// An enemy is either alive and moving or dead and fading, never both.
type Enemy struct {
	X, Y    float64
	W, H    float64
	Speed   float64 // Units moved left per tick while alive
	Variant int     // Index into draw.EnemyVariants
	Alive   bool

	// DeathTTL counts the ticks the death sprite stays on screen.
	DeathTTL int
}

// NewEnemy creates a living 50x50 enemy at (x, y) with the given sprite variant.
func NewEnemy(x, y, speed float64, variant int) *Enemy {
	if variant < 0 || variant >= len(draw.EnemyVariants) {
		variant = 0
	}
	return &Enemy{
		X:       x,
		Y:       y,
		W:       50,
		H:       50,
		Speed:   speed,
		Variant: variant,
		Alive:   true,
	}
}

// Kill marks the enemy dead. The death sprite stays for ttl ticks.
// Killing an already dead enemy keeps its running countdown.
func (e *Enemy) Kill(ttl int) bool {
	if !e.Alive {
		return false
	}
	e.Alive = false
	e.DeathTTL = ttl
	return true
}

// Update moves a living enemy left; a dead one counts down its removal.
// Living enemies are removed once fully off-screen.
func (e *Enemy) Update(_ UpdateContext) bool {
	if !e.Alive {
		e.DeathTTL--
		return e.DeathTTL <= 0
	}
	e.X -= e.Speed
	return OffScreenLeft(e.Box())
}

// Draw renders the variant sprite, or the death sprite once dead.
func (e *Enemy) Draw(ctx DrawContext) {
	asset := draw.EnemyVariants[e.Variant]
	if !e.Alive {
		asset = draw.AssetEnemyDie
	}
	ctx.Surface.DrawAsset(asset, rectOf(e.Box()))
}

// Box returns the enemy's bounds.
func (e *Enemy) Box() physics.Box {
	return physics.Box{X: e.X, Y: e.Y, W: e.W, H: e.H}
}
