// Package physics provides collision detection and jump integration helpers.
package physics

// Box is an axis-aligned rectangle. X, Y is the top-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// BoxesOverlap checks if two boxes overlap. Touching edges do not count.
func BoxesOverlap(a, b Box) bool {
	return a.X < b.Right() && a.Right() > b.X && a.Y < b.Bottom() && a.Bottom() > b.Y
}

// InsetOverlap checks if box e overlaps target once target is shrunk by inset
// on all four sides. This gives a forgiving hitbox smaller than the sprite.
func InsetOverlap(e, target Box, inset float64) bool {
	shrunk := Box{
		X: target.X + inset,
		Y: target.Y + inset,
		W: target.W - 2*inset,
		H: target.H - 2*inset,
	}
	return BoxesOverlap(e, shrunk)
}

// JumpTicks returns how many ticks a jump launched with velocity v0 (negative
// is up) under constant gravity stays airborne before landing back at the
// launch height. Returns 0 if the jump never leaves the ground.
func JumpTicks(v0, gravity float64) int {
	if v0 >= 0 || gravity <= 0 {
		return 0
	}
	y, v := 0.0, v0
	ticks := 0
	for {
		y += v
		v += gravity
		ticks++
		if y >= 0 {
			return ticks
		}
	}
}

// JumpApex returns the peak height (positive, upward) reached by a jump with
// launch velocity v0 under constant gravity.
func JumpApex(v0, gravity float64) float64 {
	if v0 >= 0 || gravity <= 0 {
		return 0
	}
	y, v := 0.0, v0
	apex := 0.0
	for v < 0 {
		y += v
		v += gravity
		if -y > apex {
			apex = -y
		}
	}
	return apex
}
