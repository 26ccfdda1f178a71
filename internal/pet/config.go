package pet

import (
	"time"
)

type StoreBackend string

const (
	StoreTOML   StoreBackend = "toml"
	StoreSQLite StoreBackend = "sqlite"
)

// Config is the user-editable blob.toml.
type Config struct {
	Version         string       `toml:"version"`
	Name            string       `toml:"name"`
	Width           float64      `toml:"width"`
	Height          float64      `toml:"height"`
	FrameSpeedMS    int          `toml:"frameSpeedMs"`
	DecayIntervalMS int          `toml:"decayIntervalMs"`
	Store           StoreBackend `toml:"store"`
	Sound           bool         `toml:"sound"`
	Volume          float64      `toml:"volume"`
	Wellbeing       string       `toml:"wellbeing"`         // average or weighted
	Sprites         string       `toml:"sprites,omitempty"` // path, relative to the config dir

	Gesture GestureConfig `toml:"gesture"`
}

// GestureConfig overrides classifier thresholds. Zero fields keep defaults.
type GestureConfig struct {
	DragThreshold  float64 `toml:"dragThreshold"`
	HitRadius      float64 `toml:"hitRadius"`
	PetThresholdMS int     `toml:"petThresholdMs"`
	TapMaxMS       int     `toml:"tapMaxMs"`
	DoubleTapMS    int     `toml:"doubleTapMs"`
	LongPressMS    int     `toml:"longPressMs"`
	SwipeThreshold float64 `toml:"swipeThreshold"`
}

func (c Config) FrameSpeed() time.Duration {
	return time.Duration(c.FrameSpeedMS) * time.Millisecond
}

func (c Config) DecayInterval() time.Duration {
	return time.Duration(c.DecayIntervalMS) * time.Millisecond
}
