package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/eco-fighter/components"
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/core"
	"github.com/lixenwraith/eco-fighter/events"
	"github.com/lixenwraith/eco-fighter/input"
	"github.com/lixenwraith/eco-fighter/vmath"
	"github.com/lixenwraith/eco-fighter/world"
)

func TestPipelineOrder(t *testing.T) {
	sim := NewDefaultSimulator()
	var prev int
	for i, s := range sim.systems {
		if i > 0 {
			assert.Greater(t, s.Priority(), prev)
		}
		prev = s.Priority()
	}
	require.Len(t, sim.systems, 8)
	assert.IsType(t, &AttackSystem{}, sim.systems[0])
	assert.IsType(t, &WinSystem{}, sim.systems[7])
}

func TestMovementClampsAboveRoad(t *testing.T) {
	gs := newState(core.ModeCleanup)
	sys := NewMovementSystem()

	for i := 0; i < 500; i++ {
		sys.Update(gs, heldFrame(0, input.KeyDown, input.KeyRight))
	}
	b := world.PlayBounds()
	assert.Equal(t, b.W-constants.PlayerSize, gs.Player.Rect.X)
	assert.Equal(t, b.H-constants.PlayerSize, gs.Player.Rect.Y)
	assert.Equal(t, components.DirRight, gs.Player.Facing)

	for i := 0; i < 500; i++ {
		sys.Update(gs, heldFrame(0, input.KeyUp))
	}
	assert.Zero(t, gs.Player.Rect.Y)
	assert.Equal(t, components.DirUp, gs.Player.Facing)
}

func TestMovementSpeedPerFrame(t *testing.T) {
	gs := newState(core.ModeCleanup)
	x := gs.Player.Rect.X
	NewMovementSystem().Update(gs, heldFrame(0, input.KeyLeft))
	assert.InDelta(t, x-constants.PlayerSpeed, gs.Player.Rect.X, 1e-9)
	assert.Equal(t, components.DirLeft, gs.Player.Facing)
}

func TestWinSignalsOnce(t *testing.T) {
	gs := newState(core.ModeCleanup)
	a := addTarget(gs, 1000, 100, 100)
	b := addTarget(gs, 1001, 200, 100)
	sys := NewWinSystem()

	a.SetComplete(true)
	sys.Update(gs, frameAt(0))
	assert.False(t, gs.Won)

	b.SetComplete(true)
	sys.Update(gs, frameAt(0))
	sys.Update(gs, frameAt(0))
	assert.True(t, gs.Won)

	evs := gs.Events.Consume()
	require.Len(t, evs, 1)
	assert.Equal(t, events.EventSceneCleared, evs[0].Type)
}

func TestNoProgressLossWithoutAdversaries(t *testing.T) {
	for _, mode := range []core.Mode{core.ModeCleanup, core.ModePlanting} {
		t.Run(mode.String(), func(t *testing.T) {
			gs := newState(mode)
			gs.LoadScene()
			gs.ResetAttempt(t0)
			gs.SpawnSources = nil // zero adversaries

			sim := NewDefaultSimulator()
			rng := vmath.NewFastRand(11)
			completed, frame := 0, 0
			step := func(in input.Snapshot) {
				sim.Advance(gs, in, t0.Add(time.Duration(frame)*constants.FrameInterval))
				frame++
				now := gs.CompletedCount()
				require.GreaterOrEqual(t, now, completed, "completed count decreased at frame %d", frame)
				completed = now
			}

			// Visit every target, idle on it, then wander a little
			for _, target := range gs.Targets {
				gs.Player.Rect = gs.Player.Rect.MoveTo(target.Rect.Pos())
				for i := 0; i < 200 && !target.Complete(); i++ {
					step(input.Snapshot{})
				}
				for i := 0; i < 10; i++ {
					step(randomInput(rng))
				}
			}
			assert.Empty(t, gs.Adversaries)
			assert.Equal(t, len(gs.Targets), completed)
			assert.True(t, gs.Won)
		})
	}
}

func TestFullClearWinsScene(t *testing.T) {
	gs := newState(core.ModePlanting)
	addTargetUnderPlayer(gs, 1000)
	sim := NewDefaultSimulator()

	sim.Advance(gs, input.Snapshot{}, t0)
	assert.False(t, gs.Won)
	sim.Advance(gs, input.Snapshot{}, t0.Add(constants.DwellDuration))
	assert.True(t, gs.Won)
	assert.Equal(t, 1, gs.Player.Score)
}
