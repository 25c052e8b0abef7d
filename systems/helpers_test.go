package systems

import (
	"time"

	"github.com/lixenwraith/eco-fighter/components"
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/core"
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/input"
	"github.com/lixenwraith/eco-fighter/vmath"
	"github.com/lixenwraith/eco-fighter/world"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// newState returns an attempt-ready state with no objects
func newState(mode core.Mode) *engine.GameState {
	gs := engine.NewGameState(mode, vmath.NewFastRand(42))
	gs.Tuning = world.TuningFor(core.DifficultyEasy, 1)
	gs.ResetAttempt(t0)
	return gs
}

// addTarget places an incomplete target with its top-left at (x, y)
func addTarget(gs *engine.GameState, id int, x, y float64) *components.GameObject {
	kind := components.KindTrash
	if gs.Mode == core.ModePlanting {
		kind = components.KindPlantSpot
	}
	obj := &components.GameObject{
		ID:   id,
		Kind: kind,
		Rect: vmath.Rect{X: x, Y: y, W: constants.CollectibleSize, H: constants.CollectibleSize},
	}
	gs.Targets = append(gs.Targets, obj)
	return obj
}

// addTargetUnderPlayer places a target overlapping the player's current rect
func addTargetUnderPlayer(gs *engine.GameState, id int) *components.GameObject {
	return addTarget(gs, id, gs.Player.Rect.X, gs.Player.Rect.Y)
}

// addAdversary places an alive adversary with its top-left at (x, y)
func addAdversary(gs *engine.GameState, id int, x, y float64) *components.GameObject {
	a := &components.GameObject{
		ID:     id,
		Kind:   components.KindAdversary,
		Rect:   vmath.Rect{X: x, Y: y, W: constants.AdversarySize, H: constants.AdversarySize},
		Alive:  true,
		Target: vmath.Vec2{X: x, Y: y},
	}
	gs.Adversaries = append(gs.Adversaries, a)
	return a
}

func frameAt(d time.Duration) Frame {
	return Frame{Now: t0.Add(d)}
}

func heldFrame(d time.Duration, keys ...input.Key) Frame {
	var s input.KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return Frame{Now: t0.Add(d), Input: input.Snapshot{Held: s}}
}

// randomInput wanders the player around without attacking
func randomInput(rng *vmath.FastRand) input.Snapshot {
	var s input.KeySet
	if rng.Chance(0.5) {
		s = s.With(input.Key(rng.Intn(4)))
	}
	return input.Snapshot{Held: s}
}
