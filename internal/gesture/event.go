// Package gesture turns a raw single-pointer stream into discrete gestures.
package gesture

import (
	"fmt"
)

// Kind identifies a gesture.
type Kind int

const (
	KindTouchStart Kind = iota
	KindTouchEnd
	KindTap
	KindDoubleTap
	KindLongPress
	KindSwipe
	KindDragStart
	KindDragMove
	KindDragEnd
	KindPoke
	KindPetTick
	KindPetEnd
)

var kindNames = map[Kind]string{
	KindTouchStart: "touch-start",
	KindTouchEnd:   "touch-end",
	KindTap:        "tap",
	KindDoubleTap:  "double-tap",
	KindLongPress:  "long-press",
	KindSwipe:      "swipe",
	KindDragStart:  "drag-start",
	KindDragMove:   "drag-move",
	KindDragEnd:    "drag-end",
	KindPoke:       "poke",
	KindPetTick:    "pet-tick",
	KindPetEnd:     "pet-end",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Zone is the vertical band of the viewport a tap or press landed in.
type Zone string

const (
	ZoneTop    Zone = "top"
	ZoneMiddle Zone = "middle"
	ZoneBottom Zone = "bottom"
)

// Direction is the dominant axis and sign of a swipe.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Event is a classified gesture. Which fields are meaningful depends on Kind:
// Zone for taps and presses, Direction for swipes, X/Y for positional kinds
// and VX/VY for drag-end.
type Event struct {
	Kind      Kind
	Zone      Zone
	Direction Direction
	X, Y      float64
	VX, VY    float64
}

func (e Event) String() string {
	switch e.Kind {
	case KindTap, KindDoubleTap, KindLongPress:
		return fmt.Sprintf("%s{%s}", e.Kind, e.Zone)
	case KindSwipe:
		return fmt.Sprintf("%s{%s}", e.Kind, e.Direction)
	case KindDragEnd:
		return fmt.Sprintf("%s{%.0f,%.0f v=%.1f,%.1f}", e.Kind, e.X, e.Y, e.VX, e.VY)
	case KindDragStart, KindPetEnd:
		return e.Kind.String()
	default:
		return fmt.Sprintf("%s{%.0f,%.0f}", e.Kind, e.X, e.Y)
	}
}
