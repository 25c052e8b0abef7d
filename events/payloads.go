package events

import "github.com/lixenwraith/eco-fighter/components"

// TargetPayload identifies a completed target
type TargetPayload struct {
	ObjectID int
	Kind     components.Kind
	Score    int
}

// MischiefPayload identifies a reverted target and who reverted it
type MischiefPayload struct {
	ObjectID    int
	Kind        components.Kind
	AdversaryID int
}

// AdversaryPayload identifies a bad citizen
type AdversaryPayload struct {
	AdversaryID int
	Spawned     int // lifetime spawned this attempt
}

// RewardPayload carries a win reward breakdown
type RewardPayload struct {
	Score int
	Base  int
	Bonus int
	Total int
}

// XPPayload carries a ledger credit
type XPPayload struct {
	Amount  int
	Balance int
	Reason  string
}

// PhasePayload carries a mission phase transition; values are engine.Phase names
type PhasePayload struct {
	From string
	To   string
}
