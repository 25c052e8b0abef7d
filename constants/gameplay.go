package constants

import "time"

// Difficulty table; index by core difficulty order (easy, medium, hard)
var (
	AdversaryBaseSpeed = [3]float64{1.5, 1.8, 2.2}
	ItemCount          = [3]int{50, 60, 70}
	TimeLimitSeconds   = [3]int{180, 150, 120}
)

// Scene ramp: effective speed = base * (SceneSpeedBase + SceneSpeedStep * scene)
const (
	SceneSpeedBase = 0.5
	SceneSpeedStep = 0.3
)

// Cleanup distribution
const (
	OceanItemShare = 0.6
)

// Player
const (
	// PlayerSpeed is displacement per frame while a movement key is held
	PlayerSpeed = 4.0

	// DwellDuration is the continuous overlap required to collect or plant
	DwellDuration = 500 * time.Millisecond
)

// Melee
const (
	AttackActiveDuration = 200 * time.Millisecond
	AttackCooldown       = 500 * time.Millisecond

	// AttackReach is how far the reach rect extends from the player edge
	AttackReach = 50.0
)

// Adversaries
const (
	MaxAliveAdversaries  = 2
	MaxSpawnedPerAttempt = 10

	SpawnInterval      = 3 * time.Second
	SpawnRetryInterval = 1 * time.Second

	// InitialSpawnDelay delays the first bad citizen after the attempt starts
	InitialSpawnDelay = 3 * time.Second

	// AdversaryArrivalDistance triggers a new wander target
	AdversaryArrivalDistance = 5.0

	// VehicleSpawnGap is the horizontal gap between a vehicle side and a spawned adversary
	VehicleSpawnGap = 5.0

	// MischiefChance is the per-frame probability per alive adversary
	MischiefChance = 0.005

	// MischiefRadius bounds which completed targets an adversary can revert
	MischiefRadius = 200.0

	AdversaryVariants = 3
)

// Rewards
const (
	ScoreXPMultiplier = 2
	WinBonusFraction  = 0.5
	AdWatchBonusXP    = 50
)

// Briefing
const (
	// BriefingScenes caps scene number for briefing script selection
	BriefingScenes = 3

	// RevealPerRune is the typewriter reveal speed for briefing lines
	RevealPerRune = 25 * time.Millisecond
)
