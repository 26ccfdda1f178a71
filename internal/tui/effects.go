package tui

import (
	"time"

	"github.com/Kuadribal/touchblob/internal/body"
)

const FloatDuration = 800 * time.Millisecond

// landed cues quieter than this get no caption.
const thudMagnitude = 12

// FloatText is one caption, anchored at canvas coordinates.
type FloatText struct {
	Text string
	X, Y float64
	Born time.Duration
}

// Floats collects the body's cues as short captions that rise and fade.
// It is driven from the run loop only.
type Floats struct {
	now   func() time.Duration
	items []FloatText
}

var _ body.Effects = (*Floats)(nil)

func NewFloats(now func() time.Duration) *Floats {
	return &Floats{now: now}
}

func (f *Floats) add(text string, x, y float64) {
	f.items = append(f.items, FloatText{Text: text, X: x, Y: y, Born: f.now()})
}

func (f *Floats) Jumped(x, y float64)             { f.add("boing!", x, y) }
func (f *Floats) Splatted(x, y float64)           { f.add("splat!", x, y) }
func (f *Floats) Squished(x, y float64)           { f.add("squish", x, y) }
func (f *Floats) Poked(x, y float64, hint string) { f.add(hint, x, y) }

func (f *Floats) Landed(x, y, magnitude float64) {
	if magnitude > thudMagnitude {
		f.add("thud", x, y)
	}
}

// Live drops expired captions and returns the rest.
func (f *Floats) Live(at time.Duration) []FloatText {
	kept := f.items[:0]
	for _, it := range f.items {
		if at-it.Born < FloatDuration {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return kept
}
