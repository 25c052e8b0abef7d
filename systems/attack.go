package systems

import (
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/events"
)

// AttackSystem expires the attack window and cooldown, then accepts a pending request
type AttackSystem struct{}

// NewAttackSystem creates the attack system
func NewAttackSystem() *AttackSystem {
	return &AttackSystem{}
}

// Priority implements System
func (s *AttackSystem) Priority() int {
	return constants.PriorityAttack
}

// Update implements System
func (s *AttackSystem) Update(gs *engine.GameState, f Frame) {
	gs.Player.ExpireAttack(f.Now)
	if !f.Input.Attack {
		return
	}
	// Rejected requests are dropped, not queued
	if gs.Player.TryAttack(f.Now) {
		gs.Emit(events.EventAttack, nil, f.Now)
	}
}
