package body

import (
	"time"
)

// Integration constants. Velocities are pixels per tick.
const (
	Gravity        = 0.5
	Friction       = 0.9
	GroundFriction = 0.8
	GroundRatio    = 0.7 // ground line as a fraction of canvas height
	EdgeMargin     = 50.0
	EdgeBounce     = -0.5
	RecenterEase   = 0.02
)

// Pointer overlay modes.
const (
	FollowRadius = 100.0
	FollowEase   = 0.12
	DragEase     = 0.3
	DragTilt     = 0.01

	FlingMultiplier = 2.0
	FlingDecay      = 0.95
	FlingStopSpeed  = 0.5
	FlingStretch    = 0.02
	FlingStretchMax = 0.4
)

// Squash and stretch springs.
const (
	ScaleEase           = 0.15
	ScaleTargetEase     = 0.1
	RotationEase        = 0.1
	RotationTargetDecay = 0.9

	ImpactSquashSpeed  = 5.0
	ImpactSquashFactor = 1.0 / 50
	ImpactSquashMax    = 0.4
	LandingEffectSpeed = 8.0
	LandingOffsetY     = 30.0
)

// Action impulses and durations.
const (
	JumpSpeed        = 15.0
	TiredJumpEnergy  = 30.0
	TiredJumpFactor  = 0.5
	DoubleTapBoost   = 1.5
	SlideSpeed       = 10.0
	PokeLift         = 5.0
	PokePush         = 3.0
	PetHappinessStep = 2.0
	PetHappinessCap  = 100.0

	JumpDuration   = 500 * time.Millisecond
	SplatDuration  = 300 * time.Millisecond
	SlideDuration  = 400 * time.Millisecond
	SquishDuration = 500 * time.Millisecond
	PokeDuration   = 200 * time.Millisecond
)
