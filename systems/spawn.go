package systems

import (
	"github.com/lixenwraith/eco-fighter/components"
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/events"
	"github.com/lixenwraith/eco-fighter/vmath"
	"github.com/lixenwraith/eco-fighter/world"
)

// SpawnSystem brings in bad citizens near buildings and vehicles
// Caps: MaxAliveAdversaries at once, MaxSpawnedPerAttempt over the attempt
type SpawnSystem struct{}

// NewSpawnSystem creates the spawn system
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Priority implements System
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update spawns at most one adversary per frame
func (s *SpawnSystem) Update(gs *engine.GameState, f Frame) {
	if gs.AliveAdversaries() >= constants.MaxAliveAdversaries {
		return
	}
	if gs.AdversariesSpawned >= constants.MaxSpawnedPerAttempt {
		return
	}
	if f.Now.Before(gs.NextSpawnAt) {
		return
	}

	if len(gs.SpawnSources) == 0 {
		gs.NextSpawnAt = f.Now.Add(constants.SpawnRetryInterval)
		return
	}

	src := gs.SpawnSources[gs.Rng.Intn(len(gs.SpawnSources))]
	rect := vmath.Rect{X: src.X, Y: src.Y, W: constants.AdversarySize, H: constants.AdversarySize}
	rect = rect.ClampInside(world.PlayBounds())

	adv := &components.GameObject{
		ID:      gs.NextObjectID(),
		Kind:    components.KindAdversary,
		Rect:    rect,
		Alive:   true,
		Target:  RandomWanderTarget(gs.Rng),
		Facing:  components.DirRight,
		Variant: gs.Rng.Intn(constants.AdversaryVariants),
	}
	gs.Adversaries = append(gs.Adversaries, adv)
	gs.AdversariesSpawned++
	gs.NextSpawnAt = f.Now.Add(constants.SpawnInterval)

	gs.Emit(events.EventAdversarySpawned, &events.AdversaryPayload{
		AdversaryID: adv.ID,
		Spawned:     gs.AdversariesSpawned,
	}, f.Now)
}

// RandomWanderTarget picks a top-left position keeping an adversary inside the play area
func RandomWanderTarget(rng *vmath.FastRand) vmath.Vec2 {
	b := world.PlayBounds()
	area := vmath.Rect{
		X: b.X,
		Y: b.Y,
		W: b.W - constants.AdversarySize,
		H: b.H - constants.AdversarySize,
	}
	return area.RandomPoint(rng)
}
