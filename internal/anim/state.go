package anim

import (
	"time"
)

const DefaultFrameSpeed = 150 * time.Millisecond

// State is the playhead over a Library. The frame index always points
// inside the active sequence, or is 0 when none is loaded.
type State struct {
	lib   Library
	speed time.Duration

	name   string
	dir    Direction
	index  int
	timer  time.Duration
	frames []Frame
}

func NewState(lib Library, speed time.Duration) *State {
	if lib == nil {
		lib = DefaultLibrary()
	}
	if speed <= 0 {
		speed = DefaultFrameSpeed
	}
	return &State{
		lib:    lib,
		speed:  speed,
		name:   Idle,
		dir:    South,
		frames: lib.Sequence(Idle, South),
	}
}

func (s *State) Name() string { return s.name }

func (s *State) Direction() Direction { return s.dir }

func (s *State) FrameIndex() int { return s.index }

func (s *State) FrameTimer() time.Duration { return s.timer }

// SetAnimation switches to name facing dir. Unknown names are ignored.
// Playback restarts only when the name or direction actually changes, so
// repeating the current pair keeps the animation running smoothly.
func (s *State) SetAnimation(name string, dir Direction) {
	if _, ok := s.lib[name]; !ok {
		return
	}
	if !dir.Valid() {
		dir = s.dir
	}

	s.frames = s.lib.Sequence(name, dir)
	if name != s.name || dir != s.dir {
		s.name = name
		s.dir = dir
		s.index = 0
		s.timer = 0
	}
	if s.index >= len(s.frames) {
		s.index = 0
	}
}

// SetDirection replays the current animation facing dir.
func (s *State) SetDirection(dir Direction) {
	if !dir.Valid() {
		return
	}
	s.SetAnimation(s.name, dir)
}

// Advance moves the playhead by dt. Leftover time carries into the next
// frame. One-shot sequences hand back to idle when they finish.
func (s *State) Advance(dt time.Duration) {
	if len(s.frames) == 0 {
		return
	}

	speed := s.frameSpeed()
	s.timer += dt
	if s.timer < speed {
		return
	}
	s.timer -= speed
	s.index++
	if s.index < len(s.frames) {
		return
	}

	s.index = 0
	if s.lib[s.name].Loop {
		return
	}
	s.timer = 0
	s.name = Idle
	s.frames = s.lib.Sequence(Idle, s.dir)
}

// CurrentFrame returns the frame under the playhead. ok is false when no
// frames are loaded for the active animation and the caller should draw
// a placeholder.
func (s *State) CurrentFrame() (frame Frame, ok bool) {
	if len(s.frames) == 0 {
		return Frame{}, false
	}
	return s.frames[s.index], true
}

func (s *State) frameSpeed() time.Duration {
	scale := s.lib[s.name].SpeedScale
	if scale <= 0 {
		return s.speed
	}
	return time.Duration(float64(s.speed) * scale)
}
