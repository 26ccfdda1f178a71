package pet

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultName   = "Blob"
	DefaultMood   = 80.0
	DefaultEnergy = 100.0
	DefaultHunger = 20.0

	StatMin = 0.0
	StatMax = 100.0
)

type InteractionKind string

const (
	InteractionJump   InteractionKind = "jump"
	InteractionSplat  InteractionKind = "splat"
	InteractionSlide  InteractionKind = "slide"
	InteractionSquish InteractionKind = "squish"
	InteractionPoke   InteractionKind = "poke"
	InteractionPet    InteractionKind = "pet"
)

// Stats are the three decaying needs. Every value stays within [StatMin, StatMax].
type Stats struct {
	Mood   float64 `json:"mood"`
	Energy float64 `json:"energy"`
	Hunger float64 `json:"hunger"`
}

// State is the persisted snapshot written under the "state" key.
type State struct {
	ID                string `json:"id,omitempty"`
	Name              string `json:"name"`
	Stats             Stats  `json:"stats"`
	TotalInteractions uint   `json:"totalInteractions"`
	CreatedAt         int64  `json:"createdAt"` // epoch milliseconds
}

func DefaultStats() Stats {
	return Stats{
		Mood:   DefaultMood,
		Energy: DefaultEnergy,
		Hunger: DefaultHunger,
	}
}

// NewState returns the first-run state for a freshly hatched blob.
func NewState(now time.Time) State {
	return State{
		ID:        uuid.NewString(),
		Name:      DefaultName,
		Stats:     DefaultStats(),
		CreatedAt: now.UnixMilli(),
	}
}

// Clamped returns a copy with every stat forced into range.
func (s Stats) Clamped() Stats {
	return Stats{
		Mood:   clamp(s.Mood, StatMin, StatMax),
		Energy: clamp(s.Energy, StatMin, StatMax),
		Hunger: clamp(s.Hunger, StatMin, StatMax),
	}
}

func (s State) Age(now time.Time) time.Duration {
	return now.Sub(time.UnixMilli(s.CreatedAt))
}
