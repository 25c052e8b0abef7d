package world

import (
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/core"
)

// Tuning holds the per-attempt tunables derived from difficulty and scene
type Tuning struct {
	BaseSpeed      float64 // adversary base speed for the difficulty
	AdversarySpeed float64 // effective speed after the scene ramp, units per frame
	ItemCount      int
	TimeLimit      int // seconds
}

// TuningFor maps a difficulty and scene number to tunables
// Scene only ramps adversary speed; item count and time limit are fixed per difficulty
func TuningFor(d core.Difficulty, scene int) Tuning {
	if !d.Valid() {
		d = core.DifficultyEasy
	}
	if scene < 1 {
		scene = 1
	}
	base := constants.AdversaryBaseSpeed[d]
	return Tuning{
		BaseSpeed:      base,
		AdversarySpeed: base * (constants.SceneSpeedBase + constants.SceneSpeedStep*float64(scene)),
		ItemCount:      constants.ItemCount[d],
		TimeLimit:      constants.TimeLimitSeconds[d],
	}
}
