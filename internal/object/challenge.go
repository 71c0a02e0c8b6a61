package object

import (
	"math/rand/v2"

	"github.com/tomz197/keyrunner/internal/draw"
)

// Direction is one required key of a challenge.
type Direction int

const (
	DirW Direction = iota
	DirA
	DirS
	DirD
	directionCount
)

var directionAssets = [directionCount]draw.Asset{
	DirW: draw.AssetKeyW,
	DirA: draw.AssetKeyA,
	DirS: draw.AssetKeyS,
	DirD: draw.AssetKeyD,
}

var directionNames = [directionCount]string{"W", "A", "S", "D"}

func (d Direction) String() string {
	if d < 0 || d >= directionCount {
		return "?"
	}
	return directionNames[d]
}

// Asset returns the key icon for the direction.
func (d Direction) Asset() draw.Asset {
	return directionAssets[d]
}

// RandomSequence returns between minLen and maxLen (inclusive) random directions.
func RandomSequence(r *rand.Rand, minLen, maxLen int) []Direction {
	n := minLen
	if maxLen > minLen {
		n += r.IntN(maxLen - minLen + 1)
	}
	seq := make([]Direction, n)
	for i := range seq {
		seq[i] = Direction(r.IntN(int(directionCount)))
	}
	return seq
}

// Challenge is the single global key sequence that defeats the enemies on screen.
// While Active, its overlay is visible.
type Challenge struct {
	Sequence []Direction
	Active   bool
}

// Activate replaces any current sequence and shows the overlay.
func (c *Challenge) Activate(seq []Direction) {
	c.Sequence = append(c.Sequence[:0], seq...)
	c.Active = len(c.Sequence) > 0
}

// Deactivate hides the overlay and drops the remaining sequence.
func (c *Challenge) Deactivate() {
	c.Sequence = c.Sequence[:0]
	c.Active = false
}

// Press consumes d if it is the next required direction. A mismatch changes
// nothing. completed is true when the last direction was consumed; the
// challenge is then inactive.
func (c *Challenge) Press(d Direction) (consumed, completed bool) {
	if !c.Active || len(c.Sequence) == 0 || c.Sequence[0] != d {
		return false, false
	}
	c.Sequence = c.Sequence[1:]
	if len(c.Sequence) == 0 {
		c.Active = false
		return true, true
	}
	return true, false
}

// Remaining returns the directions still required.
func (c *Challenge) Remaining() []Direction {
	return c.Sequence
}

// Overlay layout, in logical units relative to the panel.
const (
	overlayIconSize    = 40
	overlayIconStride  = 50
	overlayIconOffsetX = 30
	overlayIconOffsetY = 20
)

// DrawOverlay draws the panel with the remaining directions as key icons.
func (c *Challenge) DrawOverlay(ctx DrawContext, panel draw.Rect) {
	if !c.Active {
		return
	}
	ctx.Surface.FillRect(panel)
	for i, d := range c.Sequence {
		ctx.Surface.DrawAsset(d.Asset(), draw.Rect{
			X: panel.X + overlayIconOffsetX + float64(i*overlayIconStride),
			Y: panel.Y + overlayIconOffsetY,
			W: overlayIconSize,
			H: overlayIconSize,
		})
	}
}
