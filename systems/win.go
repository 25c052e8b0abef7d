package systems

import (
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/events"
)

// WinSystem signals the scene won once every target is complete
type WinSystem struct{}

// NewWinSystem creates the win check
func NewWinSystem() *WinSystem {
	return &WinSystem{}
}

// Priority implements System
func (s *WinSystem) Priority() int {
	return constants.PriorityWin
}

// Update implements System
func (s *WinSystem) Update(gs *engine.GameState, f Frame) {
	if gs.Won || !gs.AllTargetsComplete() {
		return
	}
	gs.Won = true
	gs.Emit(events.EventSceneCleared, nil, f.Now)
}
