// Package object defines the game entities: player, obstacles, enemies,
// the key challenge and visual particles.
package object

import (
	"math/rand/v2"

	"github.com/tomz197/keyrunner/internal/draw"
	"github.com/tomz197/keyrunner/internal/physics"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// UpdateContext provides what an object needs during a tick.
type UpdateContext struct {
	Spawner Spawner
	Rand    *rand.Rand
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Surface draw.Surface
}

// Object is a drawable and updatable game entity advanced once per tick.
type Object interface {
	// Update advances the object by one tick. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Draw draws the object onto ctx.Surface.
	Draw(ctx DrawContext)
}

// Collider is implemented by objects with a hitbox.
type Collider interface {
	Box() physics.Box
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// OffScreenLeft reports whether a box has fully left the surface on the left.
func OffScreenLeft(b physics.Box) bool {
	return b.Right() < 0
}

func rectOf(b physics.Box) draw.Rect {
	return draw.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}
