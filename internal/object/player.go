package object

import (
	"github.com/tomz197/keyrunner/internal/draw"
	"github.com/tomz197/keyrunner/internal/physics"
)

// Player is the auto-running character. Only its vertical position changes.
type Player struct {
	X, Y    float64 // Top-left corner
	W, H    float64
	GroundY float64 // Y of the top-left corner when standing

	Airborne bool
	VY       float64 // Vertical velocity, negative is up

	LaunchVelocity float64 // VY applied when a jump starts
	Gravity        float64 // Added to VY every airborne tick
	FrameDelay     int     // Ticks per running animation frame

	Frame      int // Index into draw.RunFrames
	frameTimer int
}

// NewPlayer creates a grounded player at x with its top edge at groundY.
func NewPlayer(x, groundY float64) *Player {
	return &Player{
		X:              x,
		Y:              groundY,
		W:              50,
		H:              50,
		GroundY:        groundY,
		VY:             -15,
		LaunchVelocity: -15, // 31 airborne ticks, 120 units apex
		Gravity:        1,
		FrameDelay:     10,
	}
}

// Reset puts the player back on the ground at the first frame.
func (p *Player) Reset() {
	p.Y = p.GroundY
	p.Airborne = false
	p.VY = p.LaunchVelocity
	p.Frame = 0
	p.frameTimer = 0
}

// Jump launches the player. Returns false if already airborne.
func (p *Player) Jump() bool {
	if p.Airborne {
		return false
	}
	p.Airborne = true
	p.VY = p.LaunchVelocity
	return true
}

// Update integrates the jump while airborne, otherwise advances the run animation.
func (p *Player) Update(_ UpdateContext) bool {
	if p.Airborne {
		p.Y += p.VY
		p.VY += p.Gravity
		if p.Y >= p.GroundY {
			p.Y = p.GroundY
			p.Airborne = false
			p.VY = p.LaunchVelocity
		}
		return false
	}

	p.frameTimer++
	if p.frameTimer >= p.FrameDelay {
		p.frameTimer = 0
		p.Frame = (p.Frame + 1) % len(draw.RunFrames)
	}
	return false
}

// Draw renders the current running frame.
func (p *Player) Draw(ctx DrawContext) {
	ctx.Surface.DrawAsset(draw.RunFrames[p.Frame], rectOf(p.Box()))
}

// Box returns the player's drawn bounds.
func (p *Player) Box() physics.Box {
	return physics.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}
