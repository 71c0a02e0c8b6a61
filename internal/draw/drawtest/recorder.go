// Package drawtest provides a recording draw.Surface for tests.
package drawtest

import "github.com/tomz197/keyrunner/internal/draw"

// Call is one recorded DrawAsset call.
type Call struct {
	Asset draw.Asset
	Rect  draw.Rect
}

// Label is one recorded DrawText call.
type Label struct {
	X, Y float64
	Text string
}

// Recorder records everything drawn since the last Clear.
type Recorder struct {
	Calls  []Call
	Panels []draw.Rect
	Labels []Label
	Clears int
}

var _ draw.Surface = (*Recorder)(nil)

// Clear drops recorded calls and counts the clear.
func (r *Recorder) Clear() {
	r.Calls = r.Calls[:0]
	r.Panels = r.Panels[:0]
	r.Labels = r.Labels[:0]
	r.Clears++
}

// DrawAsset records the call.
func (r *Recorder) DrawAsset(a draw.Asset, rect draw.Rect) {
	r.Calls = append(r.Calls, Call{Asset: a, Rect: rect})
}

// FillRect records the panel.
func (r *Recorder) FillRect(rect draw.Rect) {
	r.Panels = append(r.Panels, rect)
}

// DrawText records the label.
func (r *Recorder) DrawText(x, y float64, text string) {
	r.Labels = append(r.Labels, Label{X: x, Y: y, Text: text})
}

// Count returns how many times a was drawn.
func (r *Recorder) Count(a draw.Asset) int {
	n := 0
	for _, c := range r.Calls {
		if c.Asset == a {
			n++
		}
	}
	return n
}

// HasLabel reports whether a label with exactly text was drawn.
func (r *Recorder) HasLabel(text string) bool {
	for _, l := range r.Labels {
		if l.Text == text {
			return true
		}
	}
	return false
}
