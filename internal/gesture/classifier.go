package gesture

import (
	"math"
	"time"
)

// Thresholds tune the classifier. Distances are in canvas pixels.
type Thresholds struct {
	DragDistance   float64
	HitRadius      float64
	PetContact     time.Duration
	TapDuration    time.Duration
	TapDistance    float64
	DoubleTapGap   time.Duration
	LongPress      time.Duration
	LongPressSlop  float64
	SwipeDistance  float64
	FlingFactor    float64
	ZoneHalfHeight float64
}

// DefaultThresholds are tuned for a 640x480 canvas.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DragDistance:   15,
		HitRadius:      80,
		PetContact:     800 * time.Millisecond,
		TapDuration:    200 * time.Millisecond,
		TapDistance:    10,
		DoubleTapGap:   300 * time.Millisecond,
		LongPress:      500 * time.Millisecond,
		LongPressSlop:  20,
		SwipeDistance:  50,
		FlingFactor:    0.5,
		ZoneHalfHeight: 50,
	}
}

// Target reports where the character currently is, for hit testing.
type Target interface {
	Position() (x, y float64)
}

// session is the state of one press, from down to up.
type session struct {
	x0, y0 float64
	t0     time.Duration

	x, y   float64
	dx, dy float64 // last move delta

	dragging bool

	inContact bool
	contactAt time.Duration
	contact   time.Duration
	petting   bool
}

// Classifier tracks a single pointer. A second Down while a press is in
// flight ends the first one without classifying it; multi-touch is not
// modelled.
//
// Timestamps are supplied by the caller and must not go backwards.
type Classifier struct {
	th     Thresholds
	target Target
	emit   func(Event)

	width, height float64

	s *session

	lastTapAt time.Duration
	tapped    bool
}

// NewClassifier reports gestures to emit. target may be nil, in which case
// nothing is ever on the character.
func NewClassifier(th Thresholds, target Target, emit func(Event)) *Classifier {
	if emit == nil {
		emit = func(Event) {}
	}
	return &Classifier{th: th, target: target, emit: emit}
}

// SetViewport sets the canvas size used to derive zones.
func (c *Classifier) SetViewport(width, height float64) {
	c.width = width
	c.height = height
}

// Active reports whether a press is in flight.
func (c *Classifier) Active() bool {
	return c.s != nil
}

// Down starts a press.
func (c *Classifier) Down(x, y float64, at time.Duration) {
	if c.s != nil {
		c.abandon(c.s)
	}

	s := &session{x0: x, y0: y, t0: at, x: x, y: y}
	if c.onTarget(x, y) {
		s.inContact = true
		s.contactAt = at
	}
	c.s = s
	c.emit(Event{Kind: KindTouchStart, X: x, Y: y})
}

// Move tracks the pointer while pressed. Moves with no press are ignored.
func (c *Classifier) Move(x, y float64, at time.Duration) {
	s := c.s
	if s == nil {
		return
	}

	s.dx, s.dy = x-s.x, y-s.y
	s.x, s.y = x, y

	if !s.dragging && math.Hypot(x-s.x0, y-s.y0) > c.th.DragDistance {
		s.dragging = true
		c.emit(Event{Kind: KindDragStart, X: x, Y: y})
	}
	if s.dragging {
		c.emit(Event{Kind: KindDragMove, X: x, Y: y})
	}

	c.trackContact(s, x, y, at)
}

// trackContact accumulates time spent touching the character and emits a
// pet tick each time the accumulator passes the threshold.
func (c *Classifier) trackContact(s *session, x, y float64, at time.Duration) {
	if !c.onTarget(x, y) {
		s.inContact = false
		s.contact = 0
		return
	}
	if !s.inContact {
		s.inContact = true
		s.contactAt = at
		return
	}

	s.contact += at - s.contactAt
	s.contactAt = at
	if s.contact > c.th.PetContact {
		s.petting = true
		s.contact = 0
		c.emit(Event{Kind: KindPetTick, X: x, Y: y})
	}
}

// Up ends the press and classifies it. A drag is classified too, so a fast
// drag past the swipe distance also swipes.
func (c *Classifier) Up(x, y float64, at time.Duration) {
	s := c.s
	if s == nil {
		return
	}
	c.s = nil

	duration := at - s.t0
	dx, dy := x-s.x0, y-s.y0
	distance := math.Hypot(dx, dy)

	if s.dragging {
		c.emit(Event{
			Kind: KindDragEnd,
			X:    x,
			Y:    y,
			VX:   s.dx * c.th.FlingFactor,
			VY:   s.dy * c.th.FlingFactor,
		})
	}
	if s.petting {
		c.emit(Event{Kind: KindPetEnd, X: x, Y: y})
	}

	switch {
	case duration < c.th.TapDuration && distance < c.th.TapDistance:
		c.tap(x, y, at)
	case duration > c.th.LongPress && distance < c.th.LongPressSlop:
		c.emit(Event{Kind: KindLongPress, Zone: c.zone(y), X: x, Y: y})
	case distance > c.th.SwipeDistance:
		c.emit(Event{Kind: KindSwipe, Direction: swipeDirection(dx, dy), X: x, Y: y})
	}

	c.emit(Event{Kind: KindTouchEnd, X: x, Y: y})
}

// abandon closes s at its last position with no fling and no gesture.
func (c *Classifier) abandon(s *session) {
	c.s = nil
	if s.dragging {
		c.emit(Event{Kind: KindDragEnd, X: s.x, Y: s.y})
	}
	if s.petting {
		c.emit(Event{Kind: KindPetEnd, X: s.x, Y: s.y})
	}
	c.emit(Event{Kind: KindTouchEnd, X: s.x, Y: s.y})
}

// Leave ends the press at its last known position, as when the pointer
// exits the canvas.
func (c *Classifier) Leave(at time.Duration) {
	if c.s == nil {
		return
	}
	c.Up(c.s.x, c.s.y, at)
}

// tap emits the tap and whatever layers on top of it. A tap on the
// character is also a poke, and a quick second tap is also a double tap.
func (c *Classifier) tap(x, y float64, at time.Duration) {
	zone := c.zone(y)
	c.emit(Event{Kind: KindTap, Zone: zone, X: x, Y: y})

	if c.onTarget(x, y) {
		c.emit(Event{Kind: KindPoke, X: x, Y: y})
	}
	if c.tapped && at-c.lastTapAt < c.th.DoubleTapGap {
		c.emit(Event{Kind: KindDoubleTap, Zone: zone, X: x, Y: y})
	}

	c.lastTapAt = at
	c.tapped = true
}

func (c *Classifier) zone(y float64) Zone {
	cy := c.height / 2
	switch {
	case y < cy-c.th.ZoneHalfHeight:
		return ZoneTop
	case y > cy+c.th.ZoneHalfHeight:
		return ZoneBottom
	default:
		return ZoneMiddle
	}
}

func (c *Classifier) onTarget(x, y float64) bool {
	if c.target == nil {
		return false
	}
	tx, ty := c.target.Position()
	return math.Hypot(x-tx, y-ty) < c.th.HitRadius
}

func swipeDirection(dx, dy float64) Direction {
	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
	if dy > 0 {
		return DirectionDown
	}
	return DirectionUp
}
