package systems

import (
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/events"
)

// CombatSystem eliminates bad citizens caught in an active attack's reach
type CombatSystem struct{}

// NewCombatSystem creates the combat system
func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

// Priority implements System
func (s *CombatSystem) Priority() int {
	return constants.PriorityCombat
}

// Update implements System
func (s *CombatSystem) Update(gs *engine.GameState, f Frame) {
	if !gs.Player.AttackActive {
		return
	}
	reach := gs.Player.ReachRect()
	for _, a := range gs.Adversaries {
		if !a.Alive || !reach.Overlaps(a.Rect) {
			continue
		}
		a.Alive = false
		gs.Emit(events.EventAdversaryEliminated, &events.AdversaryPayload{
			AdversaryID: a.ID,
			Spawned:     gs.AdversariesSpawned,
		}, f.Now)
	}
}
