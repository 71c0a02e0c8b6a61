package draw

import (
	"io"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// It scales from logical coordinates to terminal pixels and implements Surface.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x]

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets for centering the render area.
	offsetCol int
	offsetRow int

	// Last rendered cell per terminal cell. Render only emits changed cells.
	prevCells   []rune
	forceRedraw bool

	texts     []textItem
	prevTexts []textItem

	renderBuf       []byte
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// textItem is a label anchored at a terminal cell.
type textItem struct {
	col, row int
	text     string
}

var _ Surface = (*Canvas)(nil)

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.prevCells = make([]rune, termHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
		c.forceRedraw = true
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.forceRedraw = true
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render emit every cell, not only changed ones.
// Call after the terminal was cleared.
func (c *Canvas) ForceRedraw() {
	c.forceRedraw = true
}

// Clear resets all pixels and labels.
func (c *Canvas) Clear() {
	clear(c.pixels)
	c.texts = c.texts[:0]
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, on bool) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = on
	}
}

// Pixel reports whether the sub-pixel at logical (x, y) is set.
func (c *Canvas) Pixel(x, y float64) bool {
	px, py := round(x*c.scaleX), round(y*c.scaleY)
	if px < 0 || px >= c.termWidth || py < 0 || py >= c.subPixelHeight {
		return false
	}
	return c.pixels[py*c.termWidth+px]
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1, y1 := round(p1.X*c.scaleX), round(p1.Y*c.scaleY)
	x2, y2 := round(p2.X*c.scaleX), round(p2.Y*c.scaleY)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, true)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon on the canvas.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// fillPolygon fills a polygon using scanline algorithm in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, true)
			}
		}
	}
}

// DrawRect draws the outline of r.
func (c *Canvas) DrawRect(r Rect) {
	tl, tr := r.At(0, 0), r.At(1, 0)
	bl, br := r.At(0, 1), r.At(1, 1)
	c.DrawLine(tl, tr)
	c.DrawLine(tr, br)
	c.DrawLine(br, bl)
	c.DrawLine(bl, tl)
}

// FillRect erases everything inside r and draws its border, giving an opaque panel.
func (c *Canvas) FillRect(r Rect) {
	x0, y0 := round(r.X*c.scaleX), round(r.Y*c.scaleY)
	x1, y1 := round(r.Right()*c.scaleX), round(r.Bottom()*c.scaleY)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.setPixel(x, y, false)
		}
	}
	c.DrawRect(r)

	// Labels beneath the panel are hidden by it.
	col0, row0 := c.LogicalToTerminal(r.X, r.Y)
	col1, row1 := c.LogicalToTerminal(r.Right(), r.Bottom())
	kept := c.texts[:0]
	for _, t := range c.texts {
		if t.row >= row0 && t.row <= row1 && t.col >= col0 && t.col <= col1 {
			continue
		}
		kept = append(kept, t)
	}
	c.texts = kept
}

// DrawText places a label centered horizontally on logical (x, y).
// Labels are clipped to the canvas width.
func (c *Canvas) DrawText(x, y float64, text string) {
	if text == "" {
		return
	}
	col, row := c.LogicalToTerminal(x, y)
	if row < 1 || row > c.termHeight {
		return
	}
	col -= utf8.RuneCountInString(text) / 2
	if col < 1 {
		text = dropRunes(text, 1-col)
		col = 1
	}
	if room := c.termWidth - col + 1; room <= 0 {
		return
	} else if utf8.RuneCountInString(text) > room {
		text = takeRunes(text, room)
	}
	c.texts = append(c.texts, textItem{col: col, row: row, text: text})
}

// DrawAsset draws the sprite for a into r.
func (c *Canvas) DrawAsset(a Asset, r Rect) {
	s, ok := sprites[a]
	if !ok {
		return
	}
	s.draw(c, r)
}

// Render writes changed cells and all labels to w using half-block characters.
func (c *Canvas) Render(w io.Writer) {
	force := c.forceRedraw || !slices.Equal(c.texts, c.prevTexts)
	c.forceRedraw = false

	buf := c.renderBuf[:0]
	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				ch = BlockEmpty
			}

			cell := row*c.termWidth + col
			if !force && c.prevCells[cell] == ch {
				continue
			}
			c.prevCells[cell] = ch
			buf = c.appendCursor(buf, col+1, row+1)
			buf = utf8.AppendRune(buf, ch)
		}
	}

	for _, t := range c.texts {
		buf = c.appendCursor(buf, t.col, t.row)
		buf = append(buf, t.text...)
	}
	c.prevTexts = append(c.prevTexts[:0], c.texts...)
	c.renderBuf = buf

	for len(buf) > 0 {
		chunk := buf
		if len(chunk) > maxChunkSize {
			chunk = buf[:maxChunkSize]
		}
		_, _ = w.Write(chunk)
		buf = buf[len(chunk):]
	}
}

// appendCursor appends a cursor move to 1-based canvas position (col, row).
func (c *Canvas) appendCursor(buf []byte, col, row int) []byte {
	buf = append(buf, "\033["...)
	buf = strconv.AppendInt(buf, int64(row+c.offsetRow), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(col+c.offsetCol), 10)
	return append(buf, 'H')
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // room for left/right vertical bars
	hasV := c.offsetRow >= 1 // room for top/bottom horizontal bars
	if !hasH && !hasV {
		return
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	move := func(row, col int) {
		buf.WriteString("\033[")
		buf.WriteString(strconv.Itoa(row))
		buf.WriteByte(';')
		buf.WriteString(strconv.Itoa(col))
		buf.WriteByte('H')
	}

	if hasV {
		if hasH {
			move(top, left)
			buf.WriteString("┌" + line + "┐")
			move(bottom, left)
			buf.WriteString("└" + line + "┘")
		} else {
			move(top, c.offsetCol+1)
			buf.WriteString(line)
			move(bottom, c.offsetCol+1)
			buf.WriteString(line)
		}
	}

	if hasH {
		startRow, endRow := top+1, bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			move(row, left)
			buf.WriteString("│")
			move(row, right)
			buf.WriteString("│")
		}
	}

	_, _ = io.WriteString(w, buf.String())
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based canvas position (col, row).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := round(x * c.scaleX)
	py := round(y * c.scaleY)
	return px + 1, py/2 + 1
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

func takeRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func dropRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[pos:]
		}
		i++
	}
	return ""
}
