package pet

import (
	"log/slog"
	"time"
)

//go:generate go tool mockgen -destination=./mocks/saver_mock.go -package=mocks . Saver

// Saver receives the full snapshot after every mutation.
type Saver interface {
	SaveState(state State) error
}

// Per-minute rates applied by ApplyDecay.
const (
	MoodDecayPerMinute      = 2.0
	EnergyRecoveryPerMinute = 5.0
	HungerGrowthPerMinute   = 3.0
)

type delta struct {
	mood, energy, hunger float64
}

var interactionDeltas = map[InteractionKind]delta{
	InteractionJump:   {mood: 5, energy: -10, hunger: 2},
	InteractionSplat:  {mood: 3, energy: -5},
	InteractionSlide:  {mood: 4, energy: -8},
	InteractionSquish: {mood: 2},
	InteractionPoke:   {mood: 3, energy: -2},
	InteractionPet:    {mood: 15},
}

// Pet holds the blob's stats. It is not safe for concurrent use; the frame
// loop is its only writer.
type Pet struct {
	state State
	saver Saver
	log   *slog.Logger
}

func New(state State, saver Saver, logger *slog.Logger) *Pet {
	if logger == nil {
		logger = slog.Default()
	}
	state.Stats = state.Stats.Clamped()
	return &Pet{state: state, saver: saver, log: logger}
}

func (p *Pet) State() State {
	return p.state
}

func (p *Pet) Stats() Stats {
	return p.state.Stats
}

func (p *Pet) Name() string {
	return p.state.Name
}

func (p *Pet) EnergyLevel() float64 {
	return p.state.Stats.Energy
}

// ApplyDecay advances the needs by elapsed wall time. Mood sinks, energy
// recovers at rest and hunger grows.
func (p *Pet) ApplyDecay(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	rate := float64(elapsed.Milliseconds()) / 60000

	s := p.state.Stats
	s.Mood -= MoodDecayPerMinute * rate
	s.Energy += EnergyRecoveryPerMinute * rate
	s.Hunger += HungerGrowthPerMinute * rate
	p.state.Stats = s.Clamped()

	p.save("decay")
}

// ApplyInteraction applies the fixed delta for kind. Unknown kinds still
// count as an interaction but leave the stats untouched.
func (p *Pet) ApplyInteraction(kind InteractionKind) {
	p.state.TotalInteractions++

	if d, ok := interactionDeltas[kind]; ok {
		s := p.state.Stats
		s.Mood += d.mood
		s.Energy += d.energy
		s.Hunger += d.hunger
		p.state.Stats = s.Clamped()
	}

	p.save(string(kind))
}

func (p *Pet) Rename(name string) {
	if name == "" {
		return
	}
	p.state.Name = name
	p.save("rename")
}

// Persistence failures are logged and swallowed; memory stays authoritative.
func (p *Pet) save(reason string) {
	if p.saver == nil {
		return
	}
	if err := p.saver.SaveState(p.state); err != nil {
		p.log.Warn("failed to save pet state", "reason", reason, "err", err)
	}
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
