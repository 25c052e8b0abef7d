package systems

import (
	"github.com/lixenwraith/eco-fighter/components"
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/events"
	"github.com/lixenwraith/eco-fighter/vmath"
)

// MischiefSystem lets alive bad citizens revert nearby completed targets
// Cleanup: trash is thrown back; planting: a tree is cut down
type MischiefSystem struct {
	// Chance per adversary per frame
	Chance float64
	Radius float64

	candidates []*components.GameObject
}

// NewMischiefSystem creates the mischief system with default odds
func NewMischiefSystem() *MischiefSystem {
	return &MischiefSystem{
		Chance: constants.MischiefChance,
		Radius: constants.MischiefRadius,
	}
}

// Priority implements System
func (s *MischiefSystem) Priority() int {
	return constants.PriorityMischief
}

// Update implements System
func (s *MischiefSystem) Update(gs *engine.GameState, f Frame) {
	for _, a := range gs.Adversaries {
		if !a.Alive {
			continue
		}
		if !gs.Rng.Chance(s.Chance) {
			continue
		}

		center := a.Rect.Center()
		s.candidates = s.candidates[:0]
		for _, t := range gs.Targets {
			if !t.IsTarget(gs.Mode) || !t.Complete() {
				continue
			}
			if vmath.Distance(center, t.Rect.Center()) <= s.Radius {
				s.candidates = append(s.candidates, t)
			}
		}
		if len(s.candidates) == 0 {
			continue
		}

		victim := s.candidates[gs.Rng.Intn(len(s.candidates))]
		victim.SetComplete(false)
		gs.Won = false

		gs.Emit(events.EventMischief, &events.MischiefPayload{
			ObjectID:    victim.ID,
			Kind:        victim.Kind,
			AdversaryID: a.ID,
		}, f.Now)
	}
}
