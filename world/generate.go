// Package world builds the object layout of a scene: fixed scenery plus the
// collectibles or plant spots the player has to complete.
package world

import (
	"math"

	"github.com/lixenwraith/eco-fighter/components"
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/core"
	"github.com/lixenwraith/eco-fighter/vmath"
)

// Layout is the generator output for one (difficulty, scene, mode)
type Layout struct {
	Tuning  Tuning
	Scenery []*components.GameObject
	Targets []*components.GameObject
	NextID  int // first free object ID, adversaries continue from here
}

// Generate builds a fresh scene; previous objects are discarded by the caller
func Generate(rng *vmath.FastRand, d core.Difficulty, scene int, mode core.Mode) Layout {
	tuning := TuningFor(d, scene)
	ids := 0
	scenery := buildScenery(rng, &ids)

	var targets []*components.GameObject
	switch mode {
	case core.ModePlanting:
		targets = plantGrid(tuning.ItemCount, &ids)
	default:
		targets = scatterCollectibles(rng, tuning.ItemCount, scenery, &ids)
	}

	return Layout{
		Tuning:  tuning,
		Scenery: scenery,
		Targets: targets,
		NextID:  ids,
	}
}

// cell is a placement slot in the cleanup grid
type cell struct {
	rect  vmath.Rect
	ocean bool
}

// placementCells partitions the play area into GridCellSize cells, dropping cells under
// scenery or the player spawn
func placementCells(scenery []*components.GameObject) (ocean, city []cell) {
	bounds := PlayBounds()
	cols := int(bounds.W / constants.GridCellSize)
	rows := int(bounds.H / constants.GridCellSize)
	oceanX := constants.CanvasWidth * constants.OceanStartFraction
	start := components.StartPosition()
	spawn := vmath.Rect{X: start.X, Y: start.Y, W: constants.PlayerSize, H: constants.PlayerSize}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			rect := vmath.Rect{
				X: bounds.X + float64(c)*constants.GridCellSize,
				Y: bounds.Y + float64(r)*constants.GridCellSize,
				W: constants.GridCellSize,
				H: constants.GridCellSize,
			}
			if rect.X >= oceanX {
				ocean = append(ocean, cell{rect: rect, ocean: true})
				continue
			}
			blocked := spawn.Overlaps(rect)
			for _, s := range scenery {
				if s.Rect.Overlaps(rect) {
					blocked = true
					break
				}
			}
			if !blocked {
				city = append(city, cell{rect: rect})
			}
		}
	}
	return ocean, city
}

// scatterCollectibles assigns 60% of items to ocean cells and the rest to city cells
// One item per cell, so no two collectibles share a position
func scatterCollectibles(rng *vmath.FastRand, count int, scenery []*components.GameObject, ids *int) []*components.GameObject {
	ocean, city := placementCells(scenery)
	rng.Shuffle(len(ocean), func(i, j int) { ocean[i], ocean[j] = ocean[j], ocean[i] })
	rng.Shuffle(len(city), func(i, j int) { city[i], city[j] = city[j], city[i] })

	oceanCount := int(math.Round(float64(count) * constants.OceanItemShare))
	cityCount := count - oceanCount
	oceanCount = min(oceanCount, len(ocean))
	cityCount = min(cityCount, len(city))

	selected := make([]cell, 0, oceanCount+cityCount)
	selected = append(selected, ocean[:oceanCount]...)
	selected = append(selected, city[:cityCount]...)

	size := constants.CollectibleSize
	slack := constants.GridCellSize - size
	out := make([]*components.GameObject, 0, len(selected))
	for _, c := range selected {
		kind := components.CollectibleKinds[rng.Intn(len(components.CollectibleKinds))]
		out = append(out, &components.GameObject{
			ID:   *ids,
			Kind: kind,
			Rect: vmath.Rect{
				X: c.rect.X + rng.Float64()*slack,
				Y: c.rect.Y + rng.Float64()*slack,
				W: size,
				H: size,
			},
		})
		*ids++
	}
	return out
}

// plantGrid lays out exactly count spots, PlantColumns per row
func plantGrid(count int, ids *int) []*components.GameObject {
	if count <= 0 {
		return nil
	}
	rows := (count + constants.PlantColumns - 1) / constants.PlantColumns
	spacingX := (constants.CanvasWidth - 2*constants.PlantMarginX) / constants.PlantColumns
	spacingY := math.Min(constants.PlantMaxRowSpacing, (constants.PlantBottom-constants.PlantTop)/float64(rows))
	size := constants.PlantSpotSize

	out := make([]*components.GameObject, 0, count)
	for i := 0; i < count; i++ {
		col := i % constants.PlantColumns
		row := i / constants.PlantColumns
		out = append(out, &components.GameObject{
			ID:   *ids,
			Kind: components.KindPlantSpot,
			Rect: vmath.Rect{
				X: constants.PlantMarginX + float64(col)*spacingX + (spacingX-size)/2,
				Y: constants.PlantTop + float64(row)*spacingY + (spacingY-size)/2,
				W: size,
				H: size,
			},
		})
		*ids++
	}
	return out
}
