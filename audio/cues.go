package audio

import (
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/events"
)

// Player is the part of SoundManager the cue handler drives
type Player interface {
	Play(SoundType) bool
}

// cueFor maps game events to sound cues
var cueFor = map[events.EventType]SoundType{
	events.EventTargetCompleted:     SoundCollect,
	events.EventAttack:              SoundAttack,
	events.EventAdversaryEliminated: SoundEliminate,
	events.EventMischief:            SoundMischief,
	events.EventSceneWon:            SoundWin,
	events.EventSceneLost:           SoundLose,
}

// Cues plays a sound for each routed game event
type Cues struct {
	player Player
}

// NewCues creates a cue handler over player
func NewCues(player Player) *Cues {
	return &Cues{player: player}
}

// EventTypes implements events.Handler
func (c *Cues) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventTargetCompleted,
		events.EventAttack,
		events.EventAdversaryEliminated,
		events.EventMischief,
		events.EventSceneWon,
		events.EventSceneLost,
	}
}

// HandleEvent implements events.Handler
func (c *Cues) HandleEvent(_ *engine.GameState, ev events.GameEvent) {
	if st, ok := cueFor[ev.Type]; ok && c.player != nil {
		c.player.Play(st)
	}
}
