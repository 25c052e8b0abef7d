package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityScenery
	PriorityTargets
	PriorityAdversaries
	PriorityPlayer
	PriorityEffects
	PriorityUI
	PriorityOverlay
)
