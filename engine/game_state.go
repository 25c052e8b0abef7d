package engine

import (
	"time"

	"github.com/lixenwraith/eco-fighter/components"
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/core"
	"github.com/lixenwraith/eco-fighter/events"
	"github.com/lixenwraith/eco-fighter/vmath"
	"github.com/lixenwraith/eco-fighter/world"
)

// GameState is the single mutable simulation state of a session
// Owned by the Session; generator output is loaded into it, systems mutate it,
// renderers only read it. All access happens on the loop goroutine
type GameState struct {
	// ===== Attempt configuration =====
	Mode       core.Mode
	Difficulty core.Difficulty
	Scene      int // 1-based, monotonically increasing within a session
	Tuning     world.Tuning

	// ===== World =====
	Scenery      []*components.GameObject
	Targets      []*components.GameObject
	Adversaries  []*components.GameObject // every adversary spawned this attempt, alive or not
	SpawnSources []vmath.Vec2

	Player   components.Player
	Standing components.StandingTracker

	// ===== Spawn pacing =====
	AdversariesSpawned int // lifetime count this attempt, never decremented
	NextSpawnAt        time.Time
	nextObjectID       int

	// ===== Attempt progress =====
	TimeLeft int  // seconds
	Won      bool // set by the simulator when every target is complete

	// ===== Infrastructure =====
	Events *events.EventQueue
	Rng    *vmath.FastRand
}

// NewGameState creates an empty state for mode; LoadScene fills it
func NewGameState(mode core.Mode, rng *vmath.FastRand) *GameState {
	return &GameState{
		Mode:     mode,
		Scene:    1,
		Player:   components.NewPlayer(),
		Standing: components.NewStandingTracker(),
		Events:   events.NewEventQueue(),
		Rng:      rng,
	}
}

// LoadScene runs the world generator for the current difficulty and scene, replacing all objects
func (gs *GameState) LoadScene() {
	layout := world.Generate(gs.Rng, gs.Difficulty, gs.Scene, gs.Mode)
	gs.Tuning = layout.Tuning
	gs.Scenery = layout.Scenery
	gs.Targets = layout.Targets
	gs.SpawnSources = world.SpawnSources(layout.Scenery)
	gs.Adversaries = nil
	gs.nextObjectID = layout.NextID
}

// ResetAttempt restores the start of an attempt: player, timer, completion flags,
// adversaries, spawn counters and the standing tracker
func (gs *GameState) ResetAttempt(now time.Time) {
	gs.Player.Reset()
	gs.Standing.Clear()
	for _, t := range gs.Targets {
		t.SetComplete(false)
	}
	for _, a := range gs.Adversaries {
		a.Alive = false
	}
	gs.Adversaries = nil
	gs.AdversariesSpawned = 0
	gs.NextSpawnAt = now.Add(constants.InitialSpawnDelay)
	gs.TimeLeft = gs.Tuning.TimeLimit
	gs.Won = false
}

// NextObjectID hands out IDs for objects created after generation
func (gs *GameState) NextObjectID() int {
	id := gs.nextObjectID
	gs.nextObjectID++
	return id
}

// AliveAdversaries counts adversaries still roaming
func (gs *GameState) AliveAdversaries() int {
	n := 0
	for _, a := range gs.Adversaries {
		if a.Alive {
			n++
		}
	}
	return n
}

// CompletedCount counts completed targets
func (gs *GameState) CompletedCount() int {
	n := 0
	for _, t := range gs.Targets {
		if t.Complete() {
			n++
		}
	}
	return n
}

// AllTargetsComplete is the win condition; a scene without targets is not winnable
func (gs *GameState) AllTargetsComplete() bool {
	if len(gs.Targets) == 0 {
		return false
	}
	for _, t := range gs.Targets {
		if t.IsTarget(gs.Mode) && !t.Complete() {
			return false
		}
	}
	return true
}

// Emit queues a game event
func (gs *GameState) Emit(t events.EventType, payload any, now time.Time) {
	gs.Events.Push(events.GameEvent{Type: t, Payload: payload, Timestamp: now})
}
