package systems

import (
	"github.com/lixenwraith/eco-fighter/components"
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/input"
	"github.com/lixenwraith/eco-fighter/world"
)

// MovementSystem applies held direction keys to the player
type MovementSystem struct{}

// NewMovementSystem creates the movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Priority implements System
func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

// Update moves Speed units per held axis and clamps above the road strip
func (s *MovementSystem) Update(gs *engine.GameState, f Frame) {
	held := f.Input.Held
	if held.Empty() {
		return
	}
	p := &gs.Player
	var dx, dy float64

	if held.Has(input.KeyUp) {
		dy -= p.Speed
		p.Facing = components.DirUp
	}
	if held.Has(input.KeyDown) {
		dy += p.Speed
		p.Facing = components.DirDown
	}
	// Horizontal wins the facing on diagonals
	if held.Has(input.KeyLeft) {
		dx -= p.Speed
		p.Facing = components.DirLeft
	}
	if held.Has(input.KeyRight) {
		dx += p.Speed
		p.Facing = components.DirRight
	}

	p.Rect.X += dx
	p.Rect.Y += dy
	p.Rect = p.Rect.ClampInside(world.PlayBounds())
}
