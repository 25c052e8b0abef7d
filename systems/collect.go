package systems

import (
	"time"

	"github.com/lixenwraith/eco-fighter/components"
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/events"
)

// CollectSystem completes targets the player stands on long enough
// One object dwells at a time; leaving or switching restarts the timer
type CollectSystem struct {
	Dwell time.Duration
}

// NewCollectSystem creates the collect system with the default dwell
func NewCollectSystem() *CollectSystem {
	return &CollectSystem{Dwell: constants.DwellDuration}
}

// Priority implements System
func (s *CollectSystem) Priority() int {
	return constants.PriorityCollect
}

// Update implements System
func (s *CollectSystem) Update(gs *engine.GameState, f Frame) {
	hit := s.overlapping(gs)
	if hit == nil {
		gs.Standing.Clear()
		return
	}
	if !gs.Standing.Tracking(hit.ID) {
		gs.Standing.Track(hit.ID, f.Now)
		return
	}
	if gs.Standing.Elapsed(f.Now) < s.Dwell {
		return
	}

	hit.SetComplete(true)
	gs.Player.Score++
	gs.Standing.Clear()

	gs.Emit(events.EventTargetCompleted, &events.TargetPayload{
		ObjectID: hit.ID,
		Kind:     hit.Kind,
		Score:    gs.Player.Score,
	}, f.Now)
}

// overlapping returns the incomplete target under the player, preferring the tracked one
func (s *CollectSystem) overlapping(gs *engine.GameState) *components.GameObject {
	var first *components.GameObject
	for _, t := range gs.Targets {
		if !t.IsTarget(gs.Mode) || t.Complete() || !gs.Player.Rect.Overlaps(t.Rect) {
			continue
		}
		if gs.Standing.Tracking(t.ID) {
			return t
		}
		if first == nil {
			first = t
		}
	}
	return first
}
