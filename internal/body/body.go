// Package body is the blob's state machine and physics integrator.
//
// Gesture methods apply immediately and are ignored when the blob is busy;
// Step integrates one frame. Both must be called from the same goroutine.
package body

import (
	"math"
	"time"

	"github.com/Kuadribal/touchblob/internal/anim"
	"github.com/Kuadribal/touchblob/internal/conditions"
	"github.com/Kuadribal/touchblob/internal/pet"
)

type Action string

const (
	ActionIdle   Action = "idle"
	ActionJump   Action = "jump"
	ActionSplat  Action = "splat"
	ActionSlide  Action = "slide"
	ActionSquish Action = "squish"
	ActionPoke   Action = "poke"
	ActionDrag   Action = "drag"
)

// RenderParams is everything a renderer needs for one frame.
type RenderParams struct {
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	Wobble   float64

	Frame     anim.Frame
	HasFrame  bool
	Animation string
	Action    Action
	IdleMood  string

	Stats pet.Stats
}

type Body struct {
	pet  *pet.Pet
	anim *anim.State
	fx   Effects

	width, height float64

	x, y           float64
	vx, vy         float64
	flingX, flingY float64

	scaleX, scaleY             float64
	targetScaleX, targetScaleY float64
	rotation, targetRotation   float64

	action      Action
	actionTimer time.Duration

	following        bool
	followX, followY float64
	dragging         bool
	dragX, dragY     float64
	petting          bool
	happiness        float64

	idleTime    float64 // ms
	breathPhase float64
	idleRule    string
	ambient     Ambient
}

// New places the blob at the centre of a width×height canvas. It falls to
// the ground on the first few steps.
func New(p *pet.Pet, a *anim.State, fx Effects, width, height float64) *Body {
	if fx == nil {
		fx = NopEffects{}
	}
	if a == nil {
		a = anim.NewState(nil, 0)
	}
	b := &Body{
		pet:          p,
		anim:         a,
		fx:           fx,
		scaleX:       1,
		scaleY:       1,
		targetScaleX: 1,
		targetScaleY: 1,
		action:       ActionIdle,
		ambient:      neutralAmbient,
	}
	b.Resize(width, height)
	return b
}

// Resize re-centres the blob on a new canvas.
func (b *Body) Resize(width, height float64) {
	b.width = width
	b.height = height
	b.x = width / 2
	b.y = height / 2
}

func (b *Body) Position() (x, y float64)  { return b.x, b.y }
func (b *Body) Velocity() (vx, vy float64) { return b.vx, b.vy }
func (b *Body) Fling() (fx, fy float64)    { return b.flingX, b.flingY }
func (b *Body) Scale() (sx, sy float64)    { return b.scaleX, b.scaleY }
func (b *Body) TargetRotation() float64    { return b.targetRotation }
func (b *Body) Action() Action             { return b.action }
func (b *Body) ActionTimer() time.Duration { return b.actionTimer }
func (b *Body) Following() bool            { return b.following }
func (b *Body) Dragging() bool             { return b.dragging }
func (b *Body) Petting() bool              { return b.petting }
func (b *Body) Happiness() float64         { return b.happiness }
func (b *Body) Ambient() Ambient           { return b.ambient }
func (b *Body) GroundY() float64           { return b.height * GroundRatio }
func (b *Body) Animation() *anim.State     { return b.anim }

// Jump launches the blob. boost is 1 for a tap and DoubleTapBoost for a
// double tap; a tired blob only manages half the height.
func (b *Body) Jump(boost float64) {
	if b.action != ActionIdle {
		return
	}
	mult := 1.0
	if b.pet.EnergyLevel() <= TiredJumpEnergy {
		mult = TiredJumpFactor
	}

	b.begin(ActionJump, JumpDuration, anim.Jump, pet.InteractionJump)
	b.vy = -JumpSpeed * mult * boost
	b.fx.Jumped(b.x, b.y)
}

func (b *Body) Splat() {
	if b.action != ActionIdle {
		return
	}
	b.begin(ActionSplat, SplatDuration, anim.Splat, pet.InteractionSplat)
	b.scaleX, b.scaleY = 1.5, 0.5
	b.fx.Splatted(b.x, b.y)
}

// Slide pushes the blob sideways; dir is -1 for left and 1 for right.
func (b *Body) Slide(dir float64) {
	if b.action != ActionIdle {
		return
	}
	facing := anim.East
	if dir < 0 {
		facing = anim.West
	}
	b.anim.SetDirection(facing)
	b.begin(ActionSlide, SlideDuration, anim.Slide, pet.InteractionSlide)
	b.vx = dir * SlideSpeed
}

func (b *Body) Squish() {
	if b.action != ActionIdle {
		return
	}
	b.begin(ActionSquish, SquishDuration, anim.Squish, pet.InteractionSquish)
	b.scaleX, b.scaleY = 1.3, 0.7
	b.fx.Squished(b.x, b.y)
}

// Poke nudges the blob up and away from (x, y). Unlike other actions a
// poke can interrupt a poke.
func (b *Body) Poke(x, y float64) {
	if b.action != ActionIdle && b.action != ActionPoke {
		return
	}
	push := PokePush
	if x > b.x {
		push = -PokePush
	}

	b.begin(ActionPoke, PokeDuration, anim.Poke, pet.InteractionPoke)
	b.vy = -PokeLift
	b.vx = push
	b.fx.Poked(x, y, conditions.MoodEmoji(b.pet.Stats().Mood))
}

// Bounce is a cosmetic squash with no action or stat change.
func (b *Body) Bounce() {
	b.scaleX, b.scaleY = 1.1, 0.9
}

func (b *Body) begin(a Action, d time.Duration, animation string, kind pet.InteractionKind) {
	b.action = a
	b.actionTimer = d
	b.anim.SetAnimation(animation, b.anim.Direction())
	b.pet.ApplyInteraction(kind)
}

// TouchStart enters follow mode when the press lands near the blob.
func (b *Body) TouchStart(x, y float64) {
	if math.Hypot(x-b.x, y-b.y) >= FollowRadius {
		return
	}
	b.following = true
	b.followX, b.followY = x, y
	b.vy = 0
}

// TouchEnd releases follow and pet modes.
func (b *Body) TouchEnd() {
	b.following = false
	b.petting = false
}

func (b *Body) DragStart() {
	if b.action != ActionIdle {
		return
	}
	b.action = ActionDrag
	b.dragging = true
	b.dragX, b.dragY = b.x, b.y
	b.vx, b.vy = 0, 0
	b.flingX, b.flingY = 0, 0
	b.scaleX, b.scaleY = 0.7, 1.3
}

func (b *Body) Drag(x, y float64) {
	if !b.dragging {
		return
	}
	b.dragX, b.dragY = x, y
	b.followX, b.followY = x, y
	b.targetRotation = (x - b.x) * DragTilt
}

// DragEnd lets go; the blob keeps twice the pointer's velocity as a fling
// and stretches along it.
func (b *Body) DragEnd(x, y, vx, vy float64) {
	if !b.dragging {
		return
	}
	b.dragging = false
	b.action = ActionIdle

	b.flingX = vx * FlingMultiplier
	b.flingY = vy * FlingMultiplier
	stretch := math.Min(math.Hypot(b.flingX, b.flingY)*FlingStretch, FlingStretchMax)
	b.scaleX = 1 - stretch*0.5
	b.scaleY = 1 + stretch
}

// Pet is one tick of continuous petting. Every PetHappinessCap worth of
// ticks the blob gets a mood boost.
func (b *Body) Pet(x, y float64) {
	b.petting = true
	b.happiness = math.Min(b.happiness+PetHappinessStep, PetHappinessCap)
	if b.happiness >= PetHappinessCap {
		b.pet.ApplyInteraction(pet.InteractionPet)
		b.happiness = 0
	}
	b.targetScaleX, b.targetScaleY = 1.05, 0.95
}

func (b *Body) PetEnd() {
	b.petting = false
}

// Step integrates one frame of dt.
func (b *Body) Step(dt time.Duration) {
	// pointer easing
	switch {
	case b.dragging:
		b.x += (b.dragX - b.x) * DragEase
		b.y += (b.dragY - b.y) * DragEase
	case b.following:
		b.x += (b.followX - b.x) * FollowEase
		b.y += (b.followY - b.y) * FollowEase
	}

	// fling
	if math.Hypot(b.flingX, b.flingY) > FlingStopSpeed {
		b.x += b.flingX
		b.y += b.flingY
		b.flingX *= FlingDecay
		b.flingY *= FlingDecay
	} else {
		b.flingX, b.flingY = 0, 0
	}

	if !b.dragging && !b.following {
		b.vy += Gravity
	}
	b.x += b.vx
	b.y += b.vy

	b.collideGround()

	b.vx *= Friction
	b.clampEdges()

	if b.action == ActionIdle && !b.following && !b.dragging {
		b.x += (b.width/2 - b.x) * RecenterEase
	}

	b.springBack()

	if b.actionTimer > 0 {
		b.actionTimer -= dt
		if b.actionTimer <= 0 {
			b.actionTimer = 0
			b.action = ActionIdle
			b.anim.SetAnimation(anim.Idle, anim.South)
		}
	}

	b.updateIdle(dt)
	b.anim.Advance(dt)
}

func (b *Body) collideGround() {
	ground := b.GroundY()
	if b.y <= ground {
		return
	}
	b.y = ground

	if b.vy > ImpactSquashSpeed {
		squash := math.Min(b.vy*ImpactSquashFactor, ImpactSquashMax)
		b.scaleX = 1 + squash
		b.scaleY = 1 - squash
		if b.vy > LandingEffectSpeed {
			b.fx.Landed(b.x, b.y+LandingOffsetY, b.vy)
		}
	}

	b.vy = 0
	if b.flingY > 0 {
		b.flingY = 0
	}
	b.vx *= GroundFriction
}

func (b *Body) clampEdges() {
	if b.x < EdgeMargin {
		b.x = EdgeMargin
		b.vx *= EdgeBounce
		b.flingX *= EdgeBounce
	}
	if right := b.width - EdgeMargin; b.x > right {
		b.x = right
		b.vx *= EdgeBounce
		b.flingX *= EdgeBounce
	}
}

func (b *Body) springBack() {
	if b.petting {
		b.targetScaleX, b.targetScaleY = 1.05, 0.95
	}

	b.scaleX += (b.targetScaleX - b.scaleX) * ScaleEase
	b.scaleY += (b.targetScaleY - b.scaleY) * ScaleEase
	b.targetScaleX += (1 - b.targetScaleX) * ScaleTargetEase
	b.targetScaleY += (1 - b.targetScaleY) * ScaleTargetEase

	b.rotation += (b.targetRotation - b.rotation) * RotationEase
	b.targetRotation *= RotationTargetDecay
}

// updateIdle refreshes the ambient motion. It only runs when nothing at
// all is going on and never touches the physics state.
func (b *Body) updateIdle(dt time.Duration) {
	if b.action != ActionIdle || b.dragging || b.following || b.petting {
		b.ambient = neutralAmbient
		b.idleRule = ""
		return
	}

	ms := float64(dt) / float64(time.Millisecond)
	b.idleTime += ms
	b.breathPhase += ms * 0.002

	rule := selectIdleRule(b.pet.Stats())
	b.idleRule = rule.name
	b.ambient = rule.curve(idleClock{t: b.idleTime, breath: b.breathPhase})
}

// IdleMood names the idle rule currently animating the blob, or "" while
// it is busy.
func (b *Body) IdleMood() string {
	return b.idleRule
}

func (b *Body) Render() RenderParams {
	frame, ok := b.anim.CurrentFrame()
	return RenderParams{
		X:         b.x,
		Y:         b.y,
		ScaleX:    b.scaleX * b.ambient.ScaleX,
		ScaleY:    b.scaleY * b.ambient.ScaleY,
		Rotation:  b.rotation + b.ambient.Lean,
		Wobble:    b.ambient.Wobble,
		Frame:     frame,
		HasFrame:  ok,
		Animation: b.anim.Name(),
		Action:    b.action,
		IdleMood:  b.idleRule,
		Stats:     b.pet.Stats(),
	}
}
