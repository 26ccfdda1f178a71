package body

//go:generate go tool mockgen -destination=./mocks/effects_mock.go -package=mocks . Effects

// Effects receives cosmetic cues the body does not draw itself: particles,
// screen shake, sounds, floating text.
type Effects interface {
	Jumped(x, y float64)
	Splatted(x, y float64)
	Squished(x, y float64)
	Poked(x, y float64, hint string)
	Landed(x, y, magnitude float64)
}

type NopEffects struct{}

func (NopEffects) Jumped(x, y float64)             {}
func (NopEffects) Splatted(x, y float64)           {}
func (NopEffects) Squished(x, y float64)           {}
func (NopEffects) Poked(x, y float64, hint string) {}
func (NopEffects) Landed(x, y, magnitude float64)  {}

// MultiEffects fans every cue out to each sink in order.
type MultiEffects []Effects

func (m MultiEffects) Jumped(x, y float64) {
	for _, e := range m {
		e.Jumped(x, y)
	}
}

func (m MultiEffects) Splatted(x, y float64) {
	for _, e := range m {
		e.Splatted(x, y)
	}
}

func (m MultiEffects) Squished(x, y float64) {
	for _, e := range m {
		e.Squished(x, y)
	}
}

func (m MultiEffects) Poked(x, y float64, hint string) {
	for _, e := range m {
		e.Poked(x, y, hint)
	}
}

func (m MultiEffects) Landed(x, y, magnitude float64) {
	for _, e := range m {
		e.Landed(x, y, magnitude)
	}
}
