// Package draw renders the logical game surface to a terminal.
package draw

import (
	"fmt"
	"io"
	"math"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Rect is a logical rectangle. X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// At maps unit coordinates (0..1 on each axis) into the rectangle.
func (r Rect) At(u, v float64) Point {
	return Point{X: r.X + u*r.W, Y: r.Y + v*r.H}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center of the rectangle.
func (r Rect) Center() Point {
	return r.At(0.5, 0.5)
}

// Asset identifies a drawable sprite by a stable index.
type Asset int

const (
	AssetRun1 Asset = iota
	AssetRun2
	AssetRun3
	AssetRun4
	AssetObstacle
	AssetEnemy1
	AssetEnemy2
	AssetEnemyDie
	AssetKeyW
	AssetKeyA
	AssetKeyS
	AssetKeyD
	AssetSpark
	assetCount
)

// RunFrames lists the running animation frames in playback order.
var RunFrames = [...]Asset{AssetRun1, AssetRun2, AssetRun3, AssetRun4}

// EnemyVariants lists the interchangeable enemy sprites.
var EnemyVariants = [...]Asset{AssetEnemy1, AssetEnemy2}

// Surface is a logical drawing target. Coordinates are logical units.
type Surface interface {
	// Clear erases everything drawn since the last Clear.
	Clear()
	// DrawAsset draws the sprite stretched into r. Unknown assets draw nothing.
	DrawAsset(a Asset, r Rect)
	// FillRect draws a panel covering r.
	FillRect(r Rect)
	// DrawText places a text label starting at (x, y).
	DrawText(x, y float64, text string)
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func round(f float64) int {
	return int(math.Round(f))
}
