package body_test

import (
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/Kuadribal/touchblob/internal/anim"
	"github.com/Kuadribal/touchblob/internal/body"
	"github.com/Kuadribal/touchblob/internal/body/mocks"
	"github.com/Kuadribal/touchblob/internal/pet"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

const (
	width  = 400.0
	height = 400.0
	tick   = 16 * time.Millisecond
)

var quietLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func newBody(stats pet.Stats, fx body.Effects) (*body.Body, *pet.Pet) {
	state := pet.NewState(time.Now())
	state.Stats = stats
	p := pet.New(state, nil, quietLog)
	return body.New(p, anim.NewState(nil, 0), fx, width, height), p
}

// settle lets the blob fall onto the ground.
func settle(b *body.Body) {
	for range 60 {
		b.Step(tick)
	}
}

func TestNewStartsCentred(t *testing.T) {
	b, _ := newBody(pet.DefaultStats(), nil)

	x, y := b.Position()
	if x != width/2 || y != height/2 {
		t.Errorf("Position() = (%v, %v), want (%v, %v)", x, y, width/2, height/2)
	}
	if b.Action() != body.ActionIdle {
		t.Errorf("Action() = %q, want idle", b.Action())
	}
	if got := b.GroundY(); got != 280 {
		t.Errorf("GroundY() = %v, want 280", got)
	}
}

func TestFallLandsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := mocks.NewMockEffects(ctrl)
	// 18 ticks of gravity from y=200 overshoot the ground at vy=9.
	fx.EXPECT().Landed(200.0, 310.0, 9.0).Times(1)

	b, _ := newBody(pet.DefaultStats(), fx)
	settle(b)

	if _, y := b.Position(); y != b.GroundY() {
		t.Errorf("y = %v, want ground %v", y, b.GroundY())
	}
	if _, vy := b.Velocity(); vy != 0 {
		t.Errorf("vy = %v, want 0 on the ground", vy)
	}
}

func TestJump(t *testing.T) {
	tests := []struct {
		name   string
		energy float64
		boost  float64
		wantVY float64
	}{
		{"rested tap", 100, 1, -15},
		{"rested double tap", 100, body.DoubleTapBoost, -22.5},
		{"tired tap", 30, 1, -7.5},
		{"tired double tap", 10, body.DoubleTapBoost, -11.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, p := newBody(pet.Stats{Mood: 50, Energy: tt.energy, Hunger: 20}, nil)
			b.Jump(tt.boost)

			if _, vy := b.Velocity(); vy != tt.wantVY {
				t.Errorf("vy = %v, want %v", vy, tt.wantVY)
			}
			if b.Action() != body.ActionJump {
				t.Errorf("Action() = %q, want jump", b.Action())
			}
			if b.ActionTimer() != body.JumpDuration {
				t.Errorf("ActionTimer() = %v, want %v", b.ActionTimer(), body.JumpDuration)
			}
			if b.Animation().Name() != anim.Jump {
				t.Errorf("animation = %q, want jump", b.Animation().Name())
			}
			if p.State().TotalInteractions != 1 {
				t.Errorf("TotalInteractions = %d, want 1", p.State().TotalInteractions)
			}
		})
	}
}

func TestActionsIgnoredWhileBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := mocks.NewMockEffects(ctrl)
	fx.EXPECT().Jumped(gomock.Any(), gomock.Any()).Times(1)

	b, p := newBody(pet.DefaultStats(), fx)
	b.Jump(1)
	b.Jump(1)
	b.Splat()
	b.Slide(1)
	b.Squish()
	b.DragStart()

	if b.Action() != body.ActionJump {
		t.Errorf("Action() = %q, want jump", b.Action())
	}
	if b.Dragging() {
		t.Error("DragStart during a jump should be ignored")
	}
	if vx, vy := b.Velocity(); vx != 0 || vy != -15 {
		t.Errorf("Velocity() = (%v, %v), want (0, -15)", vx, vy)
	}
	if p.State().TotalInteractions != 1 {
		t.Errorf("TotalInteractions = %d, want 1", p.State().TotalInteractions)
	}
	if got := p.Stats().Mood; got != 85 {
		t.Errorf("mood = %v, want 85", got)
	}
}

func TestSplatAndSquishSquash(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := mocks.NewMockEffects(ctrl)
	fx.EXPECT().Splatted(200.0, 200.0)
	fx.EXPECT().Squished(200.0, 200.0)

	b, _ := newBody(pet.DefaultStats(), fx)
	b.Splat()
	if sx, sy := b.Scale(); sx != 1.5 || sy != 0.5 {
		t.Errorf("splat Scale() = (%v, %v), want (1.5, 0.5)", sx, sy)
	}

	b2, _ := newBody(pet.DefaultStats(), fx)
	b2.Squish()
	if sx, sy := b2.Scale(); sx != 1.3 || sy != 0.7 {
		t.Errorf("squish Scale() = (%v, %v), want (1.3, 0.7)", sx, sy)
	}
	if b2.ActionTimer() != body.SquishDuration {
		t.Errorf("ActionTimer() = %v, want %v", b2.ActionTimer(), body.SquishDuration)
	}
}

func TestSlideFacesTravelDirection(t *testing.T) {
	tests := []struct {
		dir    float64
		wantVX float64
		facing anim.Direction
	}{
		{-1, -10, anim.West},
		{1, 10, anim.East},
	}

	for _, tt := range tests {
		b, _ := newBody(pet.DefaultStats(), nil)
		b.Slide(tt.dir)

		if vx, _ := b.Velocity(); vx != tt.wantVX {
			t.Errorf("Slide(%v) vx = %v, want %v", tt.dir, vx, tt.wantVX)
		}
		if got := b.Animation().Direction(); got != tt.facing {
			t.Errorf("Slide(%v) facing = %q, want %q", tt.dir, got, tt.facing)
		}
	}
}

func TestPokeRetriggers(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := mocks.NewMockEffects(ctrl)
	gomock.InOrder(
		fx.EXPECT().Poked(100.0, 200.0, "😊"),
		fx.EXPECT().Poked(300.0, 200.0, "😊"),
	)

	b, p := newBody(pet.DefaultStats(), fx)

	b.Poke(100, 200)
	if vx, vy := b.Velocity(); vx != body.PokePush || vy != -body.PokeLift {
		t.Errorf("poke from the left: Velocity() = (%v, %v), want (3, -5)", vx, vy)
	}

	b.Step(tick)
	b.Poke(300, 200)
	if vx, vy := b.Velocity(); vx != -body.PokePush || vy != -body.PokeLift {
		t.Errorf("poke from the right: Velocity() = (%v, %v), want (-3, -5)", vx, vy)
	}
	if b.ActionTimer() != body.PokeDuration {
		t.Errorf("ActionTimer() = %v, want a fresh %v", b.ActionTimer(), body.PokeDuration)
	}
	if p.State().TotalInteractions != 2 {
		t.Errorf("TotalInteractions = %d, want 2", p.State().TotalInteractions)
	}
}

func TestPokeIgnoredDuringOtherActions(t *testing.T) {
	b, p := newBody(pet.DefaultStats(), nil)
	b.Squish()
	b.Poke(100, 200)

	if b.Action() != body.ActionSquish {
		t.Errorf("Action() = %q, want squish", b.Action())
	}
	if p.State().TotalInteractions != 1 {
		t.Errorf("TotalInteractions = %d, want 1", p.State().TotalInteractions)
	}
}

func TestBounceIsCosmetic(t *testing.T) {
	b, p := newBody(pet.DefaultStats(), nil)
	b.Bounce()

	if sx, sy := b.Scale(); sx != 1.1 || sy != 0.9 {
		t.Errorf("Scale() = (%v, %v), want (1.1, 0.9)", sx, sy)
	}
	if b.Action() != body.ActionIdle {
		t.Errorf("Action() = %q, want idle", b.Action())
	}
	if p.State().TotalInteractions != 0 {
		t.Errorf("TotalInteractions = %d, want 0", p.State().TotalInteractions)
	}
}

func TestActionTimerRevertsToIdle(t *testing.T) {
	b, _ := newBody(pet.DefaultStats(), nil)
	b.Slide(1)

	for range 24 {
		b.Step(tick)
	}
	if b.Action() != body.ActionSlide {
		t.Fatalf("after 384ms Action() = %q, want slide", b.Action())
	}

	b.Step(tick)
	if b.Action() != body.ActionIdle {
		t.Errorf("after 400ms Action() = %q, want idle", b.Action())
	}
	if b.ActionTimer() != 0 {
		t.Errorf("ActionTimer() = %v, want 0", b.ActionTimer())
	}
	if b.Animation().Name() != anim.Idle || b.Animation().Direction() != anim.South {
		t.Errorf("animation = %s/%s, want idle/south", b.Animation().Name(), b.Animation().Direction())
	}
}

func TestIdleRecentering(t *testing.T) {
	b, _ := newBody(pet.DefaultStats(), nil)
	settle(b)
	b.Slide(1)

	for range 600 {
		b.Step(tick)
	}

	if x, _ := b.Position(); math.Abs(x-width/2) > 1 {
		t.Errorf("x = %v, want within 1px of %v", x, width/2)
	}
}

func TestTouchStartFollowRadius(t *testing.T) {
	b, _ := newBody(pet.DefaultStats(), nil)

	b.TouchStart(400, 400)
	if b.Following() {
		t.Error("a press far from the blob should not start following")
	}

	b.TouchStart(250, 220)
	if !b.Following() {
		t.Fatal("a press within the radius should start following")
	}
	for range 200 {
		b.Step(tick)
	}
	if x, y := b.Position(); math.Abs(x-250) > 1 || math.Abs(y-220) > 1 {
		t.Errorf("Position() = (%v, %v), want near (250, 220)", x, y)
	}

	b.TouchEnd()
	if b.Following() {
		t.Error("TouchEnd should stop following")
	}
}

func TestDragAndFling(t *testing.T) {
	b, _ := newBody(pet.DefaultStats(), nil)
	b.DragStart()

	if !b.Dragging() || b.Action() != body.ActionDrag {
		t.Fatalf("DragStart: Dragging() = %v Action() = %q", b.Dragging(), b.Action())
	}
	if sx, sy := b.Scale(); sx != 0.7 || sy != 1.3 {
		t.Errorf("grab Scale() = (%v, %v), want (0.7, 1.3)", sx, sy)
	}

	b.Drag(300, 200)
	if got := b.TargetRotation(); got != 1 {
		t.Errorf("TargetRotation() = %v, want 1", got)
	}

	b.Step(tick)
	if x, _ := b.Position(); x != 230 {
		t.Errorf("x after one eased step = %v, want 230", x)
	}
	if _, vy := b.Velocity(); vy != 0 {
		t.Errorf("vy while dragging = %v, want 0", vy)
	}

	b.DragEnd(300, 200, 10, 3)
	if b.Dragging() || b.Action() != body.ActionIdle {
		t.Errorf("DragEnd: Dragging() = %v Action() = %q", b.Dragging(), b.Action())
	}
	if fx, fy := b.Fling(); fx != 20 || fy != 6 {
		t.Errorf("Fling() = (%v, %v), want (20, 6)", fx, fy)
	}
	if sx, sy := b.Scale(); sx != 0.8 || sy != 1.4 {
		t.Errorf("stretch Scale() = (%v, %v), want (0.8, 1.4)", sx, sy)
	}

	for range 300 {
		b.Step(tick)
	}
	if fx, fy := b.Fling(); fx != 0 || fy != 0 {
		t.Errorf("Fling() = (%v, %v), want it to die out", fx, fy)
	}
}

func TestDragWithoutDragStartIgnored(t *testing.T) {
	b, _ := newBody(pet.DefaultStats(), nil)
	b.Drag(300, 300)
	b.DragEnd(300, 300, 5, 5)

	if fx, fy := b.Fling(); fx != 0 || fy != 0 {
		t.Errorf("Fling() = (%v, %v), want (0, 0)", fx, fy)
	}
}

func TestPetBoost(t *testing.T) {
	b, p := newBody(pet.Stats{Mood: 50, Energy: 50, Hunger: 20}, nil)

	for range 49 {
		b.Pet(200, 200)
	}
	if got := b.Happiness(); got != 98 {
		t.Errorf("Happiness() = %v, want 98", got)
	}
	if got := p.Stats().Mood; got != 50 {
		t.Errorf("mood before the boost = %v, want 50", got)
	}

	b.Pet(200, 200)
	if got := b.Happiness(); got != 0 {
		t.Errorf("Happiness() after the boost = %v, want 0", got)
	}
	if got := p.Stats().Mood; got != 65 {
		t.Errorf("mood after the boost = %v, want 65", got)
	}
	if !b.Petting() {
		t.Error("Petting() = false during a pet")
	}

	b.PetEnd()
	if b.Petting() {
		t.Error("Petting() = true after PetEnd")
	}
}

func TestIdleMood(t *testing.T) {
	tests := []struct {
		name  string
		stats pet.Stats
		want  string
	}{
		{"defaults are calm", pet.DefaultStats(), "calm"},
		{"happy", pet.Stats{Mood: 90, Energy: 90, Hunger: 10}, "happy"},
		{"happy but drained is calm", pet.Stats{Mood: 90, Energy: 40, Hunger: 10}, "calm"},
		{"sad", pet.Stats{Mood: 10, Energy: 10, Hunger: 90}, "sad"},
		{"tired", pet.Stats{Mood: 50, Energy: 20, Hunger: 90}, "tired"},
		{"hungry", pet.Stats{Mood: 50, Energy: 50, Hunger: 90}, "hungry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newBody(tt.stats, nil)
			b.Step(tick)
			if got := b.IdleMood(); got != tt.want {
				t.Errorf("IdleMood() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIdleMoodClearedWhileBusy(t *testing.T) {
	b, _ := newBody(pet.DefaultStats(), nil)
	b.Step(tick)
	b.Squish()
	b.Step(tick)

	if got := b.IdleMood(); got != "" {
		t.Errorf("IdleMood() during squish = %q, want empty", got)
	}
	if got := b.Ambient(); got.ScaleX != 1 || got.ScaleY != 1 || got.Wobble != 0 || got.Lean != 0 {
		t.Errorf("Ambient() during squish = %+v, want neutral", got)
	}
}

func TestRender(t *testing.T) {
	b, p := newBody(pet.DefaultStats(), nil)
	b.Bounce()

	rp := b.Render()
	if rp.X != 200 || rp.Y != 200 {
		t.Errorf("Render position = (%v, %v), want (200, 200)", rp.X, rp.Y)
	}
	if rp.ScaleX != 1.1 || rp.ScaleY != 0.9 {
		t.Errorf("Render scale = (%v, %v), want (1.1, 0.9)", rp.ScaleX, rp.ScaleY)
	}
	if rp.HasFrame {
		t.Error("HasFrame = true with no frames loaded")
	}
	if rp.Animation != anim.Idle || rp.Action != body.ActionIdle {
		t.Errorf("Render animation/action = %q/%q", rp.Animation, rp.Action)
	}
	if rp.Stats != p.Stats() {
		t.Errorf("Render stats = %+v, want %+v", rp.Stats, p.Stats())
	}
}

func TestRenderCarriesFrames(t *testing.T) {
	lib := anim.DefaultLibrary()
	lib.Merge(anim.Library{
		anim.Jump: {Directions: map[anim.Direction][]anim.Frame{
			anim.South: {{Art: "jump-0"}, {Art: "jump-1"}},
		}},
	})
	p := pet.New(pet.NewState(time.Now()), nil, quietLog)
	b := body.New(p, anim.NewState(lib, 0), nil, width, height)

	b.Jump(1)
	rp := b.Render()
	if !rp.HasFrame || rp.Frame.Art != "jump-0" {
		t.Errorf("Render frame = %+v (ok %v), want jump-0", rp.Frame, rp.HasFrame)
	}
}

func TestResizeRecentres(t *testing.T) {
	b, _ := newBody(pet.DefaultStats(), nil)
	settle(b)
	b.Resize(800, 600)

	if x, y := b.Position(); x != 400 || y != 300 {
		t.Errorf("Position() = (%v, %v), want (400, 300)", x, y)
	}
	if got := b.GroundY(); got != 420 {
		t.Errorf("GroundY() = %v, want 420", got)
	}
}

// The blob never sinks below the ground and never leaves the side
// margins, whatever the input.
func TestStepKeepsBlobInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		stats := pet.Stats{
			Mood:   rapid.Float64Range(0, 100).Draw(t, "mood"),
			Energy: rapid.Float64Range(0, 100).Draw(t, "energy"),
			Hunger: rapid.Float64Range(0, 100).Draw(t, "hunger"),
		}
		b, _ := newBody(stats, nil)

		steps := rapid.IntRange(1, 200).Draw(t, "steps")
		for i := range steps {
			px := rapid.Float64Range(-200, 600).Draw(t, "px")
			py := rapid.Float64Range(-200, 600).Draw(t, "py")
			switch rapid.IntRange(0, 12).Draw(t, "op") {
			case 0:
				b.Jump(rapid.SampledFrom([]float64{1, body.DoubleTapBoost}).Draw(t, "boost"))
			case 1:
				b.Splat()
			case 2:
				b.Slide(rapid.SampledFrom([]float64{-1, 1}).Draw(t, "dir"))
			case 3:
				b.Squish()
			case 4:
				b.Poke(px, py)
			case 5:
				b.DragStart()
			case 6:
				b.Drag(px, py)
			case 7:
				b.DragEnd(px, py, rapid.Float64Range(-50, 50).Draw(t, "vx"), rapid.Float64Range(-50, 50).Draw(t, "vy"))
			case 8:
				b.TouchStart(px, py)
			case 9:
				b.TouchEnd()
			case 10:
				b.Pet(px, py)
			case 11:
				b.Bounce()
			}

			dt := time.Duration(rapid.IntRange(0, 100).Draw(t, "dtMs")) * time.Millisecond
			b.Step(dt)

			x, y := b.Position()
			if y > b.GroundY() {
				t.Fatalf("step %d: y = %v below ground %v", i, y, b.GroundY())
			}
			if x < body.EdgeMargin || x > width-body.EdgeMargin {
				t.Fatalf("step %d: x = %v outside [%v, %v]", i, x, body.EdgeMargin, width-body.EdgeMargin)
			}
			if b.ActionTimer() < 0 {
				t.Fatalf("step %d: negative action timer %v", i, b.ActionTimer())
			}
		}
	})
}
