package renderers

import "github.com/lixenwraith/eco-fighter/render"

// RegisterAll installs the standard layer stack in draw order
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewBackgroundRenderer(), render.PriorityBackground)
	o.Register(NewSceneryRenderer(), render.PriorityScenery)
	o.Register(NewTargetRenderer(), render.PriorityTargets)
	o.Register(NewAdversaryRenderer(), render.PriorityAdversaries)
	o.Register(NewPlayerRenderer(), render.PriorityPlayer)
	o.Register(NewAttackRenderer(), render.PriorityEffects)
	o.Register(NewHUDRenderer(), render.PriorityUI)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)
}
