// Package app wires the gesture classifier to the blob's body and stats
// and implements the frame contract a renderer drives.
package app

import (
	"log/slog"
	"time"

	"github.com/Kuadribal/touchblob/internal/anim"
	"github.com/Kuadribal/touchblob/internal/body"
	"github.com/Kuadribal/touchblob/internal/gesture"
	"github.com/Kuadribal/touchblob/internal/pet"
)

const DefaultDecayInterval = 10 * time.Second

type Options struct {
	Width, Height float64
	FrameSpeed    time.Duration
	DecayInterval time.Duration
	Thresholds    gesture.Thresholds
	Effects       body.Effects
	Color         string
	Logger        *slog.Logger
}

// View is what a renderer draws each frame.
type View struct {
	body.RenderParams
	Name  string
	Color string
}

// App is single-threaded: pointer calls and Frame must come from the
// same goroutine.
type App struct {
	pet        *pet.Pet
	body       *body.Body
	classifier *gesture.Classifier
	log        *slog.Logger

	decayInterval time.Duration
	decayAcc      time.Duration
	lastFrame     time.Duration
	started       bool

	color string
}

// New builds the blob from p and the frames in lib. lib only needs to hold
// what was loaded; the built-in animation table fills the rest.
func New(p *pet.Pet, lib anim.Library, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.DecayInterval <= 0 {
		opts.DecayInterval = DefaultDecayInterval
	}
	if opts.Thresholds == (gesture.Thresholds{}) {
		opts.Thresholds = gesture.DefaultThresholds()
	}

	full := anim.DefaultLibrary()
	full.Merge(lib)

	a := &App{
		pet:           p,
		log:           opts.Logger,
		decayInterval: opts.DecayInterval,
		color:         opts.Color,
	}
	a.body = body.New(p, anim.NewState(full, opts.FrameSpeed), opts.Effects, opts.Width, opts.Height)
	a.classifier = gesture.NewClassifier(opts.Thresholds, a.body, a.dispatch)
	a.classifier.SetViewport(opts.Width, opts.Height)
	return a
}

// ThresholdsFromConfig overlays the non-zero fields of g on the defaults.
func ThresholdsFromConfig(g pet.GestureConfig) gesture.Thresholds {
	th := gesture.DefaultThresholds()
	if g.DragThreshold > 0 {
		th.DragDistance = g.DragThreshold
	}
	if g.HitRadius > 0 {
		th.HitRadius = g.HitRadius
	}
	if g.PetThresholdMS > 0 {
		th.PetContact = time.Duration(g.PetThresholdMS) * time.Millisecond
	}
	if g.TapMaxMS > 0 {
		th.TapDuration = time.Duration(g.TapMaxMS) * time.Millisecond
	}
	if g.DoubleTapMS > 0 {
		th.DoubleTapGap = time.Duration(g.DoubleTapMS) * time.Millisecond
	}
	if g.LongPressMS > 0 {
		th.LongPress = time.Duration(g.LongPressMS) * time.Millisecond
	}
	if g.SwipeThreshold > 0 {
		th.SwipeDistance = g.SwipeThreshold
	}
	return th
}

func (a *App) Pet() *pet.Pet    { return a.pet }
func (a *App) Body() *body.Body { return a.body }

// Frame advances the world to timestamp ts. Timestamps must not go
// backwards; the first frame only records the clock.
func (a *App) Frame(ts time.Duration) {
	var dt time.Duration
	if a.started {
		dt = ts - a.lastFrame
	}
	a.started = true
	a.lastFrame = ts
	if dt < 0 {
		dt = 0
	}

	a.body.Step(dt)

	a.decayAcc += dt
	if a.decayAcc >= a.decayInterval {
		a.pet.ApplyDecay(a.decayInterval)
		a.decayAcc = 0
	}
}

func (a *App) PointerDown(x, y float64, at time.Duration) { a.classifier.Down(x, y, at) }
func (a *App) PointerMove(x, y float64, at time.Duration) { a.classifier.Move(x, y, at) }
func (a *App) PointerUp(x, y float64, at time.Duration)   { a.classifier.Up(x, y, at) }
func (a *App) PointerLeave(at time.Duration)              { a.classifier.Leave(at) }

// PointerActive reports whether a press is in flight.
func (a *App) PointerActive() bool {
	return a.classifier.Active()
}

func (a *App) dispatch(ev gesture.Event) {
	a.log.Debug("gesture", "event", ev.String())

	b := a.body
	switch ev.Kind {
	case gesture.KindTap:
		switch ev.Zone {
		case gesture.ZoneTop:
			b.Jump(1)
		case gesture.ZoneBottom:
			b.Splat()
		default:
			b.Bounce()
		}
	case gesture.KindDoubleTap:
		b.Jump(body.DoubleTapBoost)
	case gesture.KindSwipe:
		switch ev.Direction {
		case gesture.DirectionLeft:
			b.Slide(-1)
		case gesture.DirectionRight:
			b.Slide(1)
		default:
			b.Jump(1)
		}
	case gesture.KindLongPress:
		b.Squish()
	case gesture.KindPoke:
		b.Poke(ev.X, ev.Y)
	case gesture.KindDragStart:
		b.DragStart()
	case gesture.KindDragMove:
		b.Drag(ev.X, ev.Y)
	case gesture.KindDragEnd:
		b.DragEnd(ev.X, ev.Y, ev.VX, ev.VY)
	case gesture.KindPetTick:
		b.Pet(ev.X, ev.Y)
	case gesture.KindPetEnd:
		b.PetEnd()
	case gesture.KindTouchStart:
		b.TouchStart(ev.X, ev.Y)
	case gesture.KindTouchEnd:
		b.TouchEnd()
	}
}

// Resize re-centres the blob and re-bands the tap zones.
func (a *App) Resize(width, height float64) {
	a.body.Resize(width, height)
	a.classifier.SetViewport(width, height)
}

func (a *App) SetColor(c string) { a.color = c }
func (a *App) Color() string     { return a.color }

func (a *App) Render() View {
	return View{
		RenderParams: a.body.Render(),
		Name:         a.pet.Name(),
		Color:        a.color,
	}
}
