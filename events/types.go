package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventTargetCompleted signals a collected item or planted spot
	// Trigger: CollectSystem after dwell | Payload: *TargetPayload
	EventTargetCompleted EventType = iota

	// EventMischief signals a bad citizen reverting a completed target
	// Trigger: MischiefSystem | Payload: *MischiefPayload
	EventMischief

	// EventAdversarySpawned signals a new bad citizen
	// Trigger: SpawnSystem | Payload: *AdversaryPayload
	EventAdversarySpawned

	// EventAdversaryEliminated signals a bad citizen stopped by the player
	// Trigger: CombatSystem | Payload: *AdversaryPayload
	EventAdversaryEliminated

	// EventAttack signals an accepted attack request
	// Trigger: AttackSystem | Payload: nil
	EventAttack

	// EventSceneCleared signals every target complete in the current attempt
	// Trigger: WinSystem | Payload: nil
	EventSceneCleared

	// EventSceneWon signals the attempt ended in a win with reward credited
	// Trigger: Session | Payload: *RewardPayload
	EventSceneWon

	// EventSceneLost signals the countdown expired first
	// Trigger: Session | Payload: nil
	EventSceneLost

	// EventXPCredited signals a ledger credit
	// Trigger: Session | Payload: *XPPayload
	EventXPCredited

	// EventPhaseChanged signals a mission phase transition
	// Trigger: Session | Payload: *PhasePayload
	EventPhaseChanged
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}

func (t EventType) String() string {
	switch t {
	case EventTargetCompleted:
		return "target_completed"
	case EventMischief:
		return "mischief"
	case EventAdversarySpawned:
		return "adversary_spawned"
	case EventAdversaryEliminated:
		return "adversary_eliminated"
	case EventAttack:
		return "attack"
	case EventSceneCleared:
		return "scene_cleared"
	case EventSceneWon:
		return "scene_won"
	case EventSceneLost:
		return "scene_lost"
	case EventXPCredited:
		return "xp_credited"
	case EventPhaseChanged:
		return "phase_changed"
	}
	return "unknown"
}
