package conditions

import (
	"strings"

	"github.com/Kuadribal/touchblob/internal/pet"
)

type Condition string

const (
	CondHappy   Condition = "happy"
	CondSad     Condition = "sad"
	CondTired   Condition = "tired"
	CondHungry  Condition = "hungry"
	CondContent Condition = "content"
)

// Thresholds shared by the status report and the idle animation rules.
const (
	HappyMood    = 80.0
	HappyEnergy  = 40.0
	SadMood      = 30.0
	TiredEnergy  = 30.0
	HungryHunger = 80.0
)

func IsHappy(s pet.Stats) bool  { return s.Mood > HappyMood && s.Energy > HappyEnergy }
func IsSad(s pet.Stats) bool    { return s.Mood < SadMood }
func IsTired(s pet.Stats) bool  { return s.Energy < TiredEnergy }
func IsHungry(s pet.Stats) bool { return s.Hunger > HungryHunger }

type DerivedStatus struct {
	Wellbeing  int
	Conditions map[Condition]bool
	Primary    Condition
	AllOrdered []Condition
}

var ordered = []struct {
	cond  Condition
	check func(pet.Stats) bool
}{
	{CondHappy, IsHappy},
	{CondSad, IsSad},
	{CondTired, IsTired},
	{CondHungry, IsHungry},
}

// DeriveStatus lists every condition that holds, in priority order. A blob
// with none of them is content.
func DeriveStatus(s pet.Stats, wellbeing int) DerivedStatus {
	conds := make(map[Condition]bool)
	var allOrdered []Condition

	for _, o := range ordered {
		if o.check(s) {
			conds[o.cond] = true
			allOrdered = append(allOrdered, o.cond)
		}
	}

	primary := CondContent
	if len(allOrdered) > 0 {
		primary = allOrdered[0]
	} else {
		conds[CondContent] = true
	}

	return DerivedStatus{
		Wellbeing:  wellbeing,
		Conditions: conds,
		Primary:    primary,
		AllOrdered: allOrdered,
	}
}

// FormatConditions renders conditions as "a, b and c".
// Returns "content" if the slice is empty.
func FormatConditions(conds []Condition) string {
	if len(conds) == 0 {
		return string(CondContent)
	}

	parts := make([]string, len(conds))
	for i, c := range conds {
		parts[i] = string(c)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}

// MoodEmoji is the reaction shown when the blob is poked.
func MoodEmoji(mood float64) string {
	switch {
	case mood > 80:
		return "😊"
	case mood > 50:
		return "😐"
	case mood > 20:
		return "😢"
	default:
		return "😭"
	}
}
