package world

import (
	"github.com/lixenwraith/eco-fighter/components"
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/vmath"
)

type placement struct {
	kind components.Kind
	rect vmath.Rect
}

// sceneryLayout is hand placed and shared by every difficulty, scene and mode
// Buildings sit above PlantTop, vehicles and lamps below PlantBottom, trees in the left margin
var sceneryLayout = []placement{
	{components.KindBuilding, vmath.Rect{X: 30, Y: 15, W: 100, H: 125}},
	{components.KindBuilding, vmath.Rect{X: 160, Y: 25, W: 90, H: 115}},
	{components.KindBuilding, vmath.Rect{X: 290, Y: 10, W: 110, H: 135}},
	{components.KindBuilding, vmath.Rect{X: 430, Y: 30, W: 90, H: 110}},

	{components.KindVehicle, vmath.Rect{X: 90, Y: 498, W: 60, H: 30}},
	{components.KindVehicle, vmath.Rect{X: 340, Y: 498, W: 60, H: 30}},

	{components.KindTree, vmath.Rect{X: 10, Y: 170, W: 30, H: 40}},
	{components.KindTree, vmath.Rect{X: 10, Y: 280, W: 30, H: 40}},
	{components.KindTree, vmath.Rect{X: 10, Y: 390, W: 30, H: 40}},

	{components.KindLamp, vmath.Rect{X: 20, Y: 492, W: 8, H: 35}},
	{components.KindLamp, vmath.Rect{X: 460, Y: 492, W: 8, H: 35}},
}

// buildScenery instantiates the fixed layout; building windows are rolled once here
func buildScenery(rng *vmath.FastRand, ids *int) []*components.GameObject {
	out := make([]*components.GameObject, 0, len(sceneryLayout))
	for _, p := range sceneryLayout {
		obj := &components.GameObject{
			ID:   *ids,
			Kind: p.kind,
			Rect: p.rect,
		}
		*ids++
		if p.kind == components.KindBuilding {
			obj.WindowCols, obj.Windows = rollWindows(rng, p.rect)
		}
		out = append(out, obj)
	}
	return out
}

// rollWindows returns the column count and a row-major lit bitmap
func rollWindows(rng *vmath.FastRand, r vmath.Rect) (int, []bool) {
	cols := int(r.W / constants.WindowCellWidth)
	rows := int((r.H - constants.WindowCellHeight) / constants.WindowCellHeight)
	if cols < 1 || rows < 1 {
		return 0, nil
	}
	lit := make([]bool, cols*rows)
	for i := range lit {
		lit[i] = rng.Chance(constants.WindowLitChance)
	}
	return cols, lit
}

// SpawnSources returns top-left positions where a bad citizen may appear:
// each building exit and both sides of each vehicle, filtered to the play area
func SpawnSources(scenery []*components.GameObject) []vmath.Vec2 {
	bounds := PlayBounds()
	size := constants.AdversarySize
	var out []vmath.Vec2
	add := func(p vmath.Vec2) {
		r := vmath.Rect{X: p.X, Y: p.Y, W: size, H: size}
		if r.X >= bounds.X && r.Y >= bounds.Y && r.X+r.W <= bounds.X+bounds.W && r.Y+r.H <= bounds.Y+bounds.H {
			out = append(out, p)
		}
	}
	for _, obj := range scenery {
		r := obj.Rect
		switch obj.Kind {
		case components.KindBuilding:
			add(vmath.Vec2{X: r.X + r.W/2 - size/2, Y: r.Y + r.H + 2})
		case components.KindVehicle:
			y := r.Y + r.H/2 - size/2
			add(vmath.Vec2{X: r.X - size - constants.VehicleSpawnGap, Y: y})
			add(vmath.Vec2{X: r.X + r.W + constants.VehicleSpawnGap, Y: y})
		}
	}
	return out
}

// PlayBounds is the area available to targets, the player and adversaries
func PlayBounds() vmath.Rect {
	return vmath.Rect{X: 0, Y: 0, W: constants.CanvasWidth, H: constants.PlayHeight}
}
