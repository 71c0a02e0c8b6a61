package object

import (
	"math"
	"sync"

	"github.com/tomz197/keyrunner/internal/draw"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived pixel thrown off by a defeated enemy.
type Particle struct {
	X, Y     float64 // Position
	VX, VY   float64 // Velocity per tick
	Lifetime int     // Ticks remaining
	Drag     float64 // Velocity kept per tick (1.0 = no drag)
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy float64, lifetime int) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Lifetime = lifetime
	p.Drag = 0.92
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnBurst throws count particles out of (x, y) in a circular pattern.
func SpawnBurst(ctx UpdateContext, x, y float64, count int, speed float64, lifetime int) {
	if ctx.Spawner == nil || ctx.Rand == nil {
		return
	}
	for i := 0; i < count; i++ {
		angle := ctx.Rand.Float64() * 2 * math.Pi
		spd := speed * (0.5 + ctx.Rand.Float64())
		life := lifetime/2 + ctx.Rand.IntN(lifetime/2+1)

		ctx.Spawner.Spawn(NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life))
	}
}

// Update moves the particle and checks lifetime.
func (p *Particle) Update(_ UpdateContext) bool {
	p.Lifetime--
	if p.Lifetime <= 0 {
		return true
	}
	p.VX *= p.Drag
	p.VY *= p.Drag
	p.X += p.VX
	p.Y += p.VY
	return false
}

// particleSize is the drawn edge length of a particle.
const particleSize = 6

// Draw renders the particle as a spark.
func (p *Particle) Draw(ctx DrawContext) {
	ctx.Surface.DrawAsset(draw.AssetSpark, draw.Rect{
		X: p.X - particleSize/2,
		Y: p.Y - particleSize/2,
		W: particleSize,
		H: particleSize,
	})
}
