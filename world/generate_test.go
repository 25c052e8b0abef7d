package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/eco-fighter/components"
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/core"
	"github.com/lixenwraith/eco-fighter/vmath"
)

func TestTuningForTable(t *testing.T) {
	tests := []struct {
		d        core.Difficulty
		base     float64
		items    int
		timeLeft int
	}{
		{core.DifficultyEasy, 1.5, 50, 180},
		{core.DifficultyMedium, 1.8, 60, 150},
		{core.DifficultyHard, 2.2, 70, 120},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			tun := TuningFor(tt.d, 1)
			assert.InDelta(t, tt.base, tun.BaseSpeed, 1e-9)
			assert.Equal(t, tt.items, tun.ItemCount)
			assert.Equal(t, tt.timeLeft, tun.TimeLimit)
		})
	}
}

func TestTuningSceneRampOnlyAffectsSpeed(t *testing.T) {
	s1 := TuningFor(core.DifficultyMedium, 1)
	s4 := TuningFor(core.DifficultyMedium, 4)

	assert.InDelta(t, 1.8*(0.5+0.3*4), s4.AdversarySpeed, 1e-9)
	assert.Greater(t, s4.AdversarySpeed, s1.AdversarySpeed)
	assert.Equal(t, s1.ItemCount, s4.ItemCount)
	assert.Equal(t, s1.TimeLimit, s4.TimeLimit)
}

func TestGenerateHardSceneOneCleanup(t *testing.T) {
	layout := Generate(vmath.NewFastRand(7), core.DifficultyHard, 1, core.ModeCleanup)

	assert.Equal(t, 70, layout.Tuning.ItemCount)
	assert.Equal(t, 120, layout.Tuning.TimeLimit)
	assert.InDelta(t, 1.76, layout.Tuning.AdversarySpeed, 1e-9)
	assert.Len(t, layout.Targets, 70)
}

func TestCleanupOceanCitySplit(t *testing.T) {
	for _, d := range core.Difficulties {
		layout := Generate(vmath.NewFastRand(99), d, 1, core.ModeCleanup)
		oceanX := constants.CanvasWidth * constants.OceanStartFraction

		ocean := 0
		for _, obj := range layout.Targets {
			require.True(t, obj.Kind.IsCollectible(), "unexpected kind %s", obj.Kind)
			if obj.Rect.X >= oceanX {
				ocean++
			}
		}
		items := constants.ItemCount[d]
		assert.Equal(t, int(float64(items)*0.6+0.5), ocean, "difficulty %s", d)
		assert.Equal(t, items-ocean, len(layout.Targets)-ocean)
	}
}

func TestCollectiblesNeverShareACell(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		layout := Generate(vmath.NewFastRand(seed), core.DifficultyHard, 2, core.ModeCleanup)
		seen := make(map[[2]int]int)
		for _, obj := range layout.Targets {
			col, row := cellOf(obj.Rect.Pos())
			key := [2]int{col, row}
			prev, dup := seen[key]
			require.False(t, dup, "seed %d: objects %d and %d share cell %v", seed, prev, obj.ID, key)
			seen[key] = obj.ID

			// Item stays inside its own cell
			endCol, endRow := cellOf(vmath.Vec2{X: obj.Rect.X + obj.Rect.W - 0.001, Y: obj.Rect.Y + obj.Rect.H - 0.001})
			assert.Equal(t, col, endCol)
			assert.Equal(t, row, endRow)
		}
	}
}

func TestCollectiblesAvoidScenery(t *testing.T) {
	layout := Generate(vmath.NewFastRand(3), core.DifficultyHard, 1, core.ModeCleanup)
	for _, item := range layout.Targets {
		for _, s := range layout.Scenery {
			assert.False(t, item.Rect.Overlaps(s.Rect), "item %d overlaps %s %d", item.ID, s.Kind, s.ID)
		}
	}
}

func TestPlantingGrid(t *testing.T) {
	layout := Generate(vmath.NewFastRand(5), core.DifficultyMedium, 1, core.ModePlanting)
	require.Len(t, layout.Targets, 60)

	rows := make(map[float64]int)
	for _, obj := range layout.Targets {
		assert.Equal(t, components.KindPlantSpot, obj.Kind)
		assert.False(t, obj.Planted)
		rows[obj.Rect.Y]++
	}
	assert.Len(t, rows, 6)
	for _, n := range rows {
		assert.Equal(t, constants.PlantColumns, n)
	}
}

func TestPlantingGridPartialLastRow(t *testing.T) {
	var ids int
	spots := plantGrid(23, &ids)
	require.Len(t, spots, 23)
	assert.Equal(t, 23, ids)

	lastRowY := spots[22].Rect.Y
	inLast := 0
	for _, s := range spots {
		if s.Rect.Y == lastRowY {
			inLast++
		}
	}
	assert.Equal(t, 3, inLast)
}

func TestSceneryFixedAcrossDifficultyAndScene(t *testing.T) {
	a := Generate(vmath.NewFastRand(1), core.DifficultyEasy, 1, core.ModeCleanup)
	b := Generate(vmath.NewFastRand(2), core.DifficultyHard, 5, core.ModePlanting)

	require.Equal(t, len(a.Scenery), len(b.Scenery))
	for i := range a.Scenery {
		assert.Equal(t, a.Scenery[i].Kind, b.Scenery[i].Kind)
		assert.Equal(t, a.Scenery[i].Rect, b.Scenery[i].Rect)
	}
}

func TestBuildingWindowsRolledOnce(t *testing.T) {
	layout := Generate(vmath.NewFastRand(11), core.DifficultyEasy, 1, core.ModeCleanup)
	for _, s := range layout.Scenery {
		if s.Kind != components.KindBuilding {
			assert.Nil(t, s.Windows)
			continue
		}
		require.NotEmpty(t, s.Windows)
		require.Positive(t, s.WindowCols)
		assert.Zero(t, len(s.Windows)%s.WindowCols)
	}

	// Same seed, same bitmap
	again := Generate(vmath.NewFastRand(11), core.DifficultyEasy, 1, core.ModeCleanup)
	for i := range layout.Scenery {
		assert.Equal(t, layout.Scenery[i].Windows, again.Scenery[i].Windows)
	}
}

func TestUniqueIDs(t *testing.T) {
	layout := Generate(vmath.NewFastRand(8), core.DifficultyHard, 1, core.ModeCleanup)
	seen := make(map[int]bool)
	for _, obj := range append(append([]*components.GameObject{}, layout.Scenery...), layout.Targets...) {
		require.False(t, seen[obj.ID])
		seen[obj.ID] = true
	}
	assert.Equal(t, len(seen), layout.NextID)
}

func TestSpawnSourcesInsidePlayArea(t *testing.T) {
	layout := Generate(vmath.NewFastRand(1), core.DifficultyEasy, 1, core.ModeCleanup)
	sources := SpawnSources(layout.Scenery)

	// 4 building exits + 2 sides for each of 2 vehicles
	require.Len(t, sources, 8)
	bounds := PlayBounds()
	for _, p := range sources {
		r := vmath.Rect{X: p.X, Y: p.Y, W: constants.AdversarySize, H: constants.AdversarySize}
		assert.Equal(t, r, r.ClampInside(bounds))
	}
}

func TestSpawnSourcesFiltersOutOfBounds(t *testing.T) {
	edge := []*components.GameObject{
		{Kind: components.KindVehicle, Rect: vmath.Rect{X: 2, Y: 100, W: 60, H: 30}},
		{Kind: components.KindTree, Rect: vmath.Rect{X: 200, Y: 100, W: 30, H: 40}},
	}
	sources := SpawnSources(edge)
	require.Len(t, sources, 1)
	assert.Greater(t, sources[0].X, 60.0)
	assert.Empty(t, SpawnSources(nil))
}

// cellOf returns the cleanup grid cell index containing p
func cellOf(p vmath.Vec2) (col, row int) {
	return int(p.X / constants.GridCellSize), int(p.Y / constants.GridCellSize)
}
