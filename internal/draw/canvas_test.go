package draw

import (
	"bytes"
	"strings"
	"testing"
)

func newTestCanvas() *Canvas {
	// 120 columns x 35 rows gives a 0.1 scale on both axes for a 1200x700 space.
	return NewScaledCanvas(120, 35, 1200, 700)
}

func TestEveryAssetHasSprite(t *testing.T) {
	for a := Asset(0); a < assetCount; a++ {
		if _, ok := sprites[a]; !ok {
			t.Errorf("asset %d has no sprite", a)
		}
	}
}

func TestDrawAssetSetsPixels(t *testing.T) {
	c := newTestCanvas()
	r := Rect{X: 600, Y: 300, W: 50, H: 50}
	c.DrawAsset(AssetObstacle, r)

	center := r.Center()
	if !c.Pixel(center.X, r.Bottom()-5) {
		t.Fatal("expected obstacle body to be filled")
	}
	if c.Pixel(100, 100) {
		t.Fatal("expected pixels outside the sprite to stay clear")
	}
}

func TestDrawAssetUnknownIsNoop(t *testing.T) {
	c := newTestCanvas()
	c.DrawAsset(Asset(999), Rect{X: 0, Y: 0, W: 100, H: 100})
	for i, on := range c.pixels {
		if on {
			t.Fatalf("pixel %d set by unknown asset", i)
		}
	}
}

func TestClearResetsPixelsAndLabels(t *testing.T) {
	c := newTestCanvas()
	c.DrawAsset(AssetKeyW, Rect{X: 100, Y: 100, W: 40, H: 40})
	if len(c.texts) != 1 {
		t.Fatalf("expected key label, got %d labels", len(c.texts))
	}
	c.Clear()
	if len(c.texts) != 0 {
		t.Fatal("expected labels cleared")
	}
	for _, on := range c.pixels {
		if on {
			t.Fatal("expected pixels cleared")
		}
	}
}

func TestFillRectHidesContent(t *testing.T) {
	c := newTestCanvas()
	c.DrawAsset(AssetEnemy1, Rect{X: 500, Y: 300, W: 100, H: 100})
	c.DrawText(550, 350, "hidden")
	c.FillRect(Rect{X: 400, Y: 250, W: 400, H: 200})

	if c.Pixel(550, 380) {
		t.Fatal("expected panel interior to be erased")
	}
	if !c.Pixel(400, 250) {
		t.Fatal("expected panel border")
	}
	if len(c.texts) != 0 {
		t.Fatal("expected label under the panel to be hidden")
	}
}

func TestDrawTextCentersAndClips(t *testing.T) {
	c := newTestCanvas()
	c.DrawText(600, 350, "GAME OVER")
	if len(c.texts) != 1 {
		t.Fatalf("expected one label, got %d", len(c.texts))
	}
	got := c.texts[0]
	if got.col != 61-4 {
		t.Fatalf("expected label centered at column 57, got %d", got.col)
	}

	c.Clear()
	c.DrawText(1200, 350, "abcdef")
	if c.texts[0].col+len(c.texts[0].text)-1 > c.TerminalWidth() {
		t.Fatalf("label overflows canvas: %+v", c.texts[0])
	}
}

func TestRenderEmitsOnlyChanges(t *testing.T) {
	c := newTestCanvas()
	var first bytes.Buffer
	c.DrawAsset(AssetObstacle, Rect{X: 600, Y: 300, W: 40, H: 40})
	c.Render(&first)
	if !strings.ContainsRune(first.String(), BlockFull) && !strings.ContainsRune(first.String(), BlockLowerHalf) {
		t.Fatal("expected block characters in first render")
	}

	var second bytes.Buffer
	c.Render(&second)
	if second.Len() != 0 {
		t.Fatalf("expected empty diff for unchanged frame, got %d bytes", second.Len())
	}

	c.ForceRedraw()
	var third bytes.Buffer
	c.Render(&third)
	if third.Len() < first.Len() {
		t.Fatal("expected forced redraw to emit the full frame")
	}
}

func TestRenderRepaintsWhenLabelsChange(t *testing.T) {
	c := newTestCanvas()
	var buf bytes.Buffer
	c.DrawText(600, 350, "Score 1")
	c.Render(&buf)

	c.Clear()
	buf.Reset()
	c.Render(&buf)
	if !strings.Contains(buf.String(), " ") {
		t.Fatal("expected stale label to be erased by a full repaint")
	}
}

func TestRenderBorderOnlyWithOffset(t *testing.T) {
	c := newTestCanvas()
	var buf bytes.Buffer
	c.RenderBorder(&buf)
	if buf.Len() != 0 {
		t.Fatal("expected no border without offset")
	}
	c.SetOffset(2, 2)
	c.RenderBorder(&buf)
	if !strings.Contains(buf.String(), "┌") {
		t.Fatal("expected corner when offset on both axes")
	}
}

func TestChunkWriterOffset(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 3, 2)
	cw.WriteAt(1, 1, "hi")
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if got := out.String(); got != "\033[3;4Hhi" {
		t.Fatalf("unexpected output %q", got)
	}
	if cw.Len() != 0 {
		t.Fatal("expected buffer reset after flush")
	}
}

type writeLog struct {
	writes [][]byte
}

func (l *writeLog) Write(p []byte) (int, error) {
	l.writes = append(l.writes, append([]byte(nil), p...))
	return len(p), nil
}

func TestChunkWriterSplitsLargeFrames(t *testing.T) {
	var out writeLog
	cw := NewChunkWriter(&out, 0, 0)
	frame := strings.Repeat("x", 2*maxChunkSize+10)
	cw.WriteString(frame)
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	if len(out.writes) != 3 {
		t.Fatalf("expected 3 writes, got %d", len(out.writes))
	}
	var joined []byte
	for _, w := range out.writes {
		if len(w) > maxChunkSize {
			t.Fatalf("write of %d bytes exceeds chunk size", len(w))
		}
		joined = append(joined, w...)
	}
	if string(joined) != frame {
		t.Fatal("chunks do not reassemble the frame")
	}
}

func TestChunkWriterClampsToRenderArea(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 5, 1)
	cw.WriteAt(-3, 0, "x")
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if got := out.String(); got != "\033[2;6Hx" {
		t.Fatalf("unexpected output %q", got)
	}
}
