package constants

// System priorities; lower runs first within a frame
// The order is the observable per-frame evaluation order of the simulator
const (
	PriorityAttack    = 10
	PriorityMovement  = 20
	PrioritySpawn     = 30
	PriorityAdversary = 40
	PriorityMischief  = 50
	PriorityCombat    = 60
	PriorityCollect   = 70
	PriorityWin       = 80
)
