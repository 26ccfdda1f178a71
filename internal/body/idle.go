package body

import (
	"math"

	"github.com/Kuadribal/touchblob/internal/conditions"
	"github.com/Kuadribal/touchblob/internal/pet"
)

// Ambient is the cosmetic motion layered over the physics state while the
// blob is idle. Scales multiply, Wobble and Lean add to rotation.
type Ambient struct {
	Wobble float64
	Lean   float64
	ScaleX float64
	ScaleY float64
}

var neutralAmbient = Ambient{ScaleX: 1, ScaleY: 1}

// idleClock is what a curve may read: t is idle time in milliseconds,
// breath is the slower breathing phase.
type idleClock struct {
	t, breath float64
}

type idleRule struct {
	name  string
	match func(pet.Stats) bool
	curve func(c idleClock) Ambient
}

// idleRules are tried in order; the first match drives the idle motion.
var idleRules = []idleRule{
	{name: "happy", match: conditions.IsHappy, curve: bouncyWiggle},
	{name: "sad", match: conditions.IsSad, curve: droopySway},
	{name: "tired", match: conditions.IsTired, curve: slowBreathing},
	{name: "hungry", match: conditions.IsHungry, curve: restlessJitter},
	{name: "calm", match: func(pet.Stats) bool { return true }, curve: gentleBreathing},
}

func selectIdleRule(s pet.Stats) idleRule {
	for _, r := range idleRules {
		if r.match(s) {
			return r
		}
	}
	return idleRules[len(idleRules)-1]
}

func bouncyWiggle(c idleClock) Ambient {
	s := math.Sin(c.t*0.003) * 0.02
	return Ambient{
		Wobble: math.Sin(c.t*0.004) * 0.03,
		ScaleX: 1 + s,
		ScaleY: 1 - s,
	}
}

func droopySway(c idleClock) Ambient {
	sag := math.Abs(math.Sin(c.breath))
	return Ambient{
		Wobble: math.Sin(c.t*0.001) * 0.02,
		ScaleX: 1 + sag*0.03,
		ScaleY: 1 - sag*0.05,
	}
}

func slowBreathing(c idleClock) Ambient {
	breath := math.Sin(c.breath*0.5) * 0.03
	return Ambient{
		Lean:   math.Sin(c.t*0.001) * 0.05,
		ScaleX: 1 - breath,
		ScaleY: 1 + breath,
	}
}

func restlessJitter(c idleClock) Ambient {
	return Ambient{
		Wobble: math.Sin(c.t*0.01) * 0.04,
		ScaleX: 1 + math.Sin(c.t*0.008)*0.02,
		ScaleY: 1,
	}
}

func gentleBreathing(c idleClock) Ambient {
	breath := math.Sin(c.breath) * 0.02
	return Ambient{
		ScaleX: 1 - breath*0.5,
		ScaleY: 1 + breath,
	}
}
