package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Kuadribal/touchblob/internal/pet"
	"github.com/google/uuid"
)

// LoadState reads the persisted pet. Anything missing or unreadable falls
// back to a fresh blob; the caller never sees an error.
func LoadState(s Store, now time.Time, log *slog.Logger) pet.State {
	if log == nil {
		log = slog.Default()
	}

	raw, ok, err := s.Get(KeyState)
	if err != nil {
		log.Warn("failed to read saved state, starting fresh", "err", err)
		return pet.NewState(now)
	}
	if !ok || raw == "" {
		return pet.NewState(now)
	}

	// Unmarshal only overwrites what the payload carries, so partial
	// records keep the defaults for the rest.
	state := pet.State{Stats: pet.DefaultStats()}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		log.Warn("saved state is malformed, starting fresh", "err", err)
		return pet.NewState(now)
	}

	if state.ID == "" {
		state.ID = uuid.NewString()
	}
	if state.Name == "" {
		state.Name = pet.DefaultName
	}
	if state.CreatedAt <= 0 {
		state.CreatedAt = now.UnixMilli()
	}
	state.Stats = state.Stats.Clamped()
	return state
}

func SaveState(s Store, state pet.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := s.Set(KeyState, string(data)); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// LoadColor returns the custom fill color, or "" when none was chosen.
func LoadColor(s Store) (string, error) {
	c, _, err := s.Get(KeyColor)
	if err != nil {
		return "", fmt.Errorf("failed to read color: %w", err)
	}
	return c, nil
}

// SaveColor stores c; an empty string clears the custom color.
func SaveColor(s Store, c string) error {
	if err := s.Set(KeyColor, c); err != nil {
		return fmt.Errorf("failed to save color: %w", err)
	}
	return nil
}

// StateSaver writes pet snapshots through to a Store.
type StateSaver struct {
	Store Store
}

func (s StateSaver) SaveState(state pet.State) error {
	return SaveState(s.Store, state)
}
