package pet_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Kuadribal/touchblob/internal/pet"
	"github.com/Kuadribal/touchblob/internal/pet/mocks"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

var quietLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func newPet(stats pet.Stats) *pet.Pet {
	state := pet.NewState(time.Now())
	state.Stats = stats
	return pet.New(state, nil, quietLog)
}

func TestApplyDecayTenMinutes(t *testing.T) {
	p := newPet(pet.DefaultStats())
	before := p.Stats()

	p.ApplyDecay(600000 * time.Millisecond)

	got := p.Stats()
	if got.Mood != before.Mood-20 {
		t.Errorf("mood = %v, want %v", got.Mood, before.Mood-20)
	}
	if got.Energy != 100 {
		t.Errorf("energy = %v, want 100 (clamped)", got.Energy)
	}
	if got.Hunger != before.Hunger+30 {
		t.Errorf("hunger = %v, want %v", got.Hunger, before.Hunger+30)
	}
}

func TestApplyDecayClampsAtFloor(t *testing.T) {
	p := newPet(pet.Stats{Mood: 5, Energy: 10, Hunger: 95})

	p.ApplyDecay(time.Hour)

	got := p.Stats()
	if got.Mood != 0 || got.Energy != 100 || got.Hunger != 100 {
		t.Errorf("stats after an hour = %+v, want mood 0 energy 100 hunger 100", got)
	}
}

func TestApplyDecayIgnoresNonPositive(t *testing.T) {
	ctrl := gomock.NewController(t)
	saver := mocks.NewMockSaver(ctrl)
	saver.EXPECT().SaveState(gomock.Any()).Times(0)

	p := pet.New(pet.NewState(time.Now()), saver, quietLog)
	p.ApplyDecay(0)
	p.ApplyDecay(-time.Second)

	if p.Stats() != pet.DefaultStats() {
		t.Errorf("stats changed: %+v", p.Stats())
	}
}

func TestApplyInteractionTable(t *testing.T) {
	tests := []struct {
		kind pet.InteractionKind
		want pet.Stats
	}{
		{pet.InteractionJump, pet.Stats{Mood: 55, Energy: 40, Hunger: 52}},
		{pet.InteractionSplat, pet.Stats{Mood: 53, Energy: 45, Hunger: 50}},
		{pet.InteractionSlide, pet.Stats{Mood: 54, Energy: 42, Hunger: 50}},
		{pet.InteractionSquish, pet.Stats{Mood: 52, Energy: 50, Hunger: 50}},
		{pet.InteractionPoke, pet.Stats{Mood: 53, Energy: 48, Hunger: 50}},
		{pet.InteractionPet, pet.Stats{Mood: 65, Energy: 50, Hunger: 50}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			p := newPet(pet.Stats{Mood: 50, Energy: 50, Hunger: 50})
			p.ApplyInteraction(tt.kind)

			if got := p.Stats(); got != tt.want {
				t.Errorf("ApplyInteraction(%s) = %+v, want %+v", tt.kind, got, tt.want)
			}
			if got := p.State().TotalInteractions; got != 1 {
				t.Errorf("TotalInteractions = %d, want 1", got)
			}
		})
	}
}

func TestApplyInteractionJumpFromDefaults(t *testing.T) {
	p := newPet(pet.DefaultStats())
	p.ApplyInteraction(pet.InteractionJump)

	want := pet.Stats{Mood: 85, Energy: 90, Hunger: 22}
	if got := p.Stats(); got != want {
		t.Errorf("stats = %+v, want %+v", got, want)
	}
}

func TestWriteThroughOnEveryMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	saver := mocks.NewMockSaver(ctrl)

	gomock.InOrder(
		saver.EXPECT().SaveState(gomock.Any()).DoAndReturn(func(s pet.State) error {
			if s.Stats.Mood != 85 {
				t.Errorf("saved mood = %v, want 85", s.Stats.Mood)
			}
			return nil
		}),
		saver.EXPECT().SaveState(gomock.Any()).Return(nil),
		saver.EXPECT().SaveState(gomock.Any()).Return(nil),
	)

	p := pet.New(pet.NewState(time.Now()), saver, quietLog)
	p.ApplyInteraction(pet.InteractionJump)
	p.ApplyDecay(10 * time.Second)
	p.Rename("Gloop")
}

func TestSaveFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	saver := mocks.NewMockSaver(ctrl)
	saver.EXPECT().SaveState(gomock.Any()).Return(errors.New("disk full")).Times(2)

	p := pet.New(pet.NewState(time.Now()), saver, quietLog)
	p.ApplyInteraction(pet.InteractionPoke)
	p.ApplyDecay(time.Minute)

	if got := p.State().TotalInteractions; got != 1 {
		t.Errorf("in-memory state lost after failed save: interactions = %d", got)
	}
}

func TestRenameIgnoresEmpty(t *testing.T) {
	p := newPet(pet.DefaultStats())
	p.Rename("")
	if p.Name() != pet.DefaultName {
		t.Errorf("name = %q, want %q", p.Name(), pet.DefaultName)
	}
}

func TestStatsStayInRange(t *testing.T) {
	kinds := []pet.InteractionKind{
		pet.InteractionJump, pet.InteractionSplat, pet.InteractionSlide,
		pet.InteractionSquish, pet.InteractionPoke, pet.InteractionPet,
	}

	rapid.Check(t, func(t *rapid.T) {
		p := newPet(pet.Stats{
			Mood:   rapid.Float64Range(-50, 150).Draw(t, "mood"),
			Energy: rapid.Float64Range(-50, 150).Draw(t, "energy"),
			Hunger: rapid.Float64Range(-50, 150).Draw(t, "hunger"),
		})

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "decay") {
				ms := rapid.Int64Range(0, 3_600_000).Draw(t, "elapsedMs")
				p.ApplyDecay(time.Duration(ms) * time.Millisecond)
			} else {
				p.ApplyInteraction(rapid.SampledFrom(kinds).Draw(t, "kind"))
			}

			s := p.Stats()
			for name, v := range map[string]float64{"mood": s.Mood, "energy": s.Energy, "hunger": s.Hunger} {
				if v < pet.StatMin || v > pet.StatMax {
					t.Fatalf("%s = %v out of range after step %d", name, v, i)
				}
			}
		}
	})
}
