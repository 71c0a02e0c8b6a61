package object

import (
	"github.com/tomz197/keyrunner/internal/draw"
	"github.com/tomz197/keyrunner/internal/physics"
)

// Obstacle is a ground spike the player has to jump over.
type Obstacle struct {
	X, Y  float64
	W, H  float64
	Speed float64 // Units moved left per tick
}

// NewObstacle creates a 40x40 obstacle at (x, y).
func NewObstacle(x, y, speed float64) *Obstacle {
	return &Obstacle{
		X:     x,
		Y:     y,
		W:     40,
		H:     40,
		Speed: speed,
	}
}

// Update moves the obstacle left. It is removed once fully off-screen.
func (o *Obstacle) Update(_ UpdateContext) bool {
	o.X -= o.Speed
	return OffScreenLeft(o.Box())
}

// Draw renders the obstacle sprite.
func (o *Obstacle) Draw(ctx DrawContext) {
	ctx.Surface.DrawAsset(draw.AssetObstacle, rectOf(o.Box()))
}

// Box returns the obstacle's bounds.
func (o *Obstacle) Box() physics.Box {
	return physics.Box{X: o.X, Y: o.Y, W: o.W, H: o.H}
}
