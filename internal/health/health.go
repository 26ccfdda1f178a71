package health

import (
	"github.com/Kuadribal/touchblob/internal/pet"
)

type ComputationMode string

const (
	ComputationAverage  ComputationMode = "average"
	ComputationWeighted ComputationMode = "weighted"
)

// ComputeWellbeing folds the three needs into one 0-100 score. Hunger is
// inverted: a full blob scores high.
func ComputeWellbeing(s pet.Stats, mode ComputationMode) int {
	satiety := 100 - s.Hunger

	var score float64
	switch mode {
	case ComputationWeighted:
		score = satiety*0.3 + s.Mood*0.4 + s.Energy*0.3
	default: // average
		score = (satiety + s.Mood + s.Energy) / 3
	}

	// Clamp to [0, 100]
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return int(score)
}
