package systems

import (
	"github.com/lixenwraith/eco-fighter/components"
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/vmath"
)

// AdversarySystem steers alive bad citizens toward their wander targets
// Speed is per frame, scaled by difficulty and scene
type AdversarySystem struct{}

// NewAdversarySystem creates the adversary movement system
func NewAdversarySystem() *AdversarySystem {
	return &AdversarySystem{}
}

// Priority implements System
func (s *AdversarySystem) Priority() int {
	return constants.PriorityAdversary
}

// Update implements System
func (s *AdversarySystem) Update(gs *engine.GameState, f Frame) {
	speed := gs.Tuning.AdversarySpeed
	for _, a := range gs.Adversaries {
		if !a.Alive {
			continue
		}
		from := a.Rect.Pos()
		to, remaining := vmath.MoveToward(from, a.Target, speed)
		a.Rect = a.Rect.MoveTo(to)

		switch vmath.Sign(to.X - from.X) {
		case 1:
			a.Facing = components.DirRight
		case -1:
			a.Facing = components.DirLeft
		}

		if remaining < constants.AdversaryArrivalDistance {
			a.Target = RandomWanderTarget(gs.Rng)
		}
	}
}
