// Package systems implements the entity simulator as ordered per-frame systems
package systems

import (
	"sort"
	"time"

	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/input"
)

// Frame is what every system sees for one simulator step
type Frame struct {
	Now   time.Time // game time
	Input input.Snapshot
}

// System mutates game state once per frame
type System interface {
	Update(gs *engine.GameState, f Frame)
	Priority() int // Lower values run first
}

// Simulator runs its systems in priority order; implements engine.Simulator
type Simulator struct {
	systems []System
}

// NewSimulator creates a simulator from systems, sorted by priority
func NewSimulator(systems ...System) *Simulator {
	s := &Simulator{systems: append([]System(nil), systems...)}
	sort.SliceStable(s.systems, func(i, j int) bool {
		return s.systems[i].Priority() < s.systems[j].Priority()
	})
	return s
}

// NewDefaultSimulator wires the full frame pipeline
func NewDefaultSimulator() *Simulator {
	return NewSimulator(
		NewAttackSystem(),
		NewMovementSystem(),
		NewSpawnSystem(),
		NewAdversarySystem(),
		NewMischiefSystem(),
		NewCombatSystem(),
		NewCollectSystem(),
		NewWinSystem(),
	)
}

// Advance runs one frame
func (s *Simulator) Advance(gs *engine.GameState, in input.Snapshot, now time.Time) {
	f := Frame{Now: now, Input: in}
	for _, sys := range s.systems {
		sys.Update(gs, f)
	}
}
