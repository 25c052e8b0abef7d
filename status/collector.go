package status

import (
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/events"
)

// Collector counts routed game events into a Registry
// Each event type gets an "event.<name>" counter
type Collector struct {
	reg *Registry
}

// NewCollector creates a collector writing to reg
func NewCollector(reg *Registry) *Collector {
	return &Collector{reg: reg}
}

// EventTypes implements events.Handler
func (c *Collector) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventTargetCompleted,
		events.EventMischief,
		events.EventAdversarySpawned,
		events.EventAdversaryEliminated,
		events.EventAttack,
		events.EventSceneCleared,
		events.EventSceneWon,
		events.EventSceneLost,
		events.EventXPCredited,
		events.EventPhaseChanged,
	}
}

// HandleEvent implements events.Handler
func (c *Collector) HandleEvent(_ *engine.GameState, ev events.GameEvent) {
	c.reg.Counters.Get("event." + ev.Type.String()).Add(1)

	switch p := ev.Payload.(type) {
	case *events.XPPayload:
		c.reg.Counters.Get(KeyXPEarned).Add(int64(p.Amount))
	case *events.PhasePayload:
		c.reg.Labels.Get(KeyPhase).Store(p.To)
	}
}
