package components

import (
	"github.com/lixenwraith/eco-fighter/core"
	"github.com/lixenwraith/eco-fighter/vmath"
)

// Kind identifies what a GameObject represents
type Kind uint8

const (
	KindTrash Kind = iota
	KindBottle
	KindCan
	KindPlantSpot
	KindTree
	KindVehicle
	KindBuilding
	KindLamp
	KindAdversary
)

// CollectibleKinds are the random pool for cleanup placement
var CollectibleKinds = [...]Kind{KindTrash, KindBottle, KindCan}

func (k Kind) String() string {
	switch k {
	case KindTrash:
		return "trash"
	case KindBottle:
		return "bottle"
	case KindCan:
		return "can"
	case KindPlantSpot:
		return "plant-spot"
	case KindTree:
		return "tree"
	case KindVehicle:
		return "vehicle"
	case KindBuilding:
		return "building"
	case KindLamp:
		return "lamp"
	case KindAdversary:
		return "adversary"
	}
	return "unknown"
}

// IsCollectible reports trash, bottle or can
func (k Kind) IsCollectible() bool {
	return k == KindTrash || k == KindBottle || k == KindCan
}

// IsDecorative reports static scenery
func (k Kind) IsDecorative() bool {
	return k == KindTree || k == KindVehicle || k == KindBuilding || k == KindLamp
}

// GameObject is a placed entity: scenery, target or adversary
// Created in bulk by the world generator, mutated in place by systems
type GameObject struct {
	ID   int
	Kind Kind
	Rect vmath.Rect

	Collected bool // collectibles
	Planted   bool // plant spots
	Alive     bool // adversaries

	// Adversary only
	Target  vmath.Vec2
	Facing  Direction
	Variant int

	// Buildings only: lit window bitmap, row-major, frozen at creation
	Windows    []bool
	WindowCols int
}

// IsTarget reports whether the object counts toward the win condition in mode
func (o *GameObject) IsTarget(mode core.Mode) bool {
	switch mode {
	case core.ModeCleanup:
		return o.Kind.IsCollectible()
	case core.ModePlanting:
		return o.Kind == KindPlantSpot
	}
	return false
}

// Complete reports the completion flag for a target object
func (o *GameObject) Complete() bool {
	if o.Kind == KindPlantSpot {
		return o.Planted
	}
	return o.Collected
}

// SetComplete sets the kind-appropriate completion flag
func (o *GameObject) SetComplete(done bool) {
	if o.Kind == KindPlantSpot {
		o.Planted = done
		return
	}
	o.Collected = done
}
