// Package anim selects and steps through directional frame sequences.
package anim

type Direction string

const (
	South Direction = "south"
	East  Direction = "east"
	North Direction = "north"
	West  Direction = "west"
)

// Directions lists the facings a sprite set may provide, in load order.
var Directions = []Direction{South, East, North, West}

func (d Direction) Valid() bool {
	switch d {
	case South, East, North, West:
		return true
	}
	return false
}

// Animation names the body switches between.
const (
	Idle   = "idle"
	Jump   = "jump"
	Splat  = "splat"
	Slide  = "slide"
	Squish = "squish"
	Poke   = "poke"
)

// Frame is an opaque handle to one loaded image. The terminal frontend
// stores ASCII art in it.
type Frame struct {
	Art string
}

// Definition describes one animation. Loop marks sequences that restart
// instead of handing back to idle. SpeedScale stretches the base frame
// time; zero means 1.
type Definition struct {
	Loop       bool
	SpeedScale float64
	Directions map[Direction][]Frame
}

// Library maps animation names to their definitions.
type Library map[string]Definition

// DefaultLibrary declares every animation the body uses, without frames.
// Only idle loops, and it plays half again as slow.
func DefaultLibrary() Library {
	return Library{
		Idle:   {Loop: true, SpeedScale: 1.5},
		Jump:   {},
		Splat:  {},
		Slide:  {},
		Squish: {},
		Poke:   {},
	}
}

// Merge copies frames and flags from other over l, adding animations l
// does not declare. Directions with no frames are skipped.
func (l Library) Merge(other Library) {
	for name, def := range other {
		cur := l[name]
		cur.Loop = def.Loop
		if def.SpeedScale > 0 {
			cur.SpeedScale = def.SpeedScale
		}
		for dir, frames := range def.Directions {
			if len(frames) == 0 {
				continue
			}
			if cur.Directions == nil {
				cur.Directions = make(map[Direction][]Frame)
			}
			cur.Directions[dir] = frames
		}
		l[name] = cur
	}
}

// Sequence returns the frames for name facing dir, falling back to the
// south-facing frames. It returns nil when nothing is loaded.
func (l Library) Sequence(name string, dir Direction) []Frame {
	def, ok := l[name]
	if !ok {
		return nil
	}
	if frames := def.Directions[dir]; len(frames) > 0 {
		return frames
	}
	return def.Directions[South]
}

// FrameCount is the total number of frames loaded across all animations.
func (l Library) FrameCount() int {
	n := 0
	for _, def := range l {
		for _, frames := range def.Directions {
			n += len(frames)
		}
	}
	return n
}
