package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/eco-fighter/components"
	"github.com/lixenwraith/eco-fighter/core"
	"github.com/lixenwraith/eco-fighter/events"
)

func TestDwellCompletesAtThreshold(t *testing.T) {
	for _, mode := range []core.Mode{core.ModeCleanup, core.ModePlanting} {
		t.Run(mode.String(), func(t *testing.T) {
			gs := newState(mode)
			target := addTargetUnderPlayer(gs, 1000)
			sys := NewCollectSystem()

			sys.Update(gs, frameAt(0))
			require.True(t, gs.Standing.Tracking(target.ID))

			sys.Update(gs, frameAt(250*time.Millisecond))
			sys.Update(gs, frameAt(499*time.Millisecond))
			assert.False(t, target.Complete(), "must not complete before 500ms")
			assert.Zero(t, gs.Player.Score)

			sys.Update(gs, frameAt(500*time.Millisecond))
			assert.True(t, target.Complete())
			assert.Equal(t, 1, gs.Player.Score)
			assert.False(t, gs.Standing.Active(), "tracker clears on completion")

			evs := gs.Events.Consume()
			require.Len(t, evs, 1)
			assert.Equal(t, events.EventTargetCompleted, evs[0].Type)
			p := evs[0].Payload.(*events.TargetPayload)
			assert.Equal(t, target.ID, p.ObjectID)
			assert.Equal(t, 1, p.Score)
		})
	}
}

func TestDwellNotCumulativeAcrossInterruptions(t *testing.T) {
	gs := newState(core.ModeCleanup)
	target := addTargetUnderPlayer(gs, 1000)
	sys := NewCollectSystem()
	home := gs.Player.Rect

	sys.Update(gs, frameAt(0))
	sys.Update(gs, frameAt(499*time.Millisecond))

	// Step off
	gs.Player.Rect.X += 200
	sys.Update(gs, frameAt(510*time.Millisecond))
	assert.False(t, gs.Standing.Active())

	// Step back: the timer restarts from zero
	gs.Player.Rect = home
	sys.Update(gs, frameAt(520*time.Millisecond))
	assert.True(t, gs.Standing.Tracking(target.ID))
	assert.Equal(t, t0.Add(520*time.Millisecond), gs.Standing.Since)

	sys.Update(gs, frameAt(1000*time.Millisecond))
	assert.False(t, target.Complete(), "480ms of fresh dwell is not enough")

	sys.Update(gs, frameAt(1020*time.Millisecond))
	assert.True(t, target.Complete())
}

func TestSwitchingTargetsResetsTimer(t *testing.T) {
	gs := newState(core.ModeCleanup)
	a := addTargetUnderPlayer(gs, 1000)
	b := addTarget(gs, 1001, gs.Player.Rect.X+100, gs.Player.Rect.Y)
	sys := NewCollectSystem()

	sys.Update(gs, frameAt(0))
	require.True(t, gs.Standing.Tracking(a.ID))

	gs.Player.Rect.X += 100
	sys.Update(gs, frameAt(300*time.Millisecond))
	require.True(t, gs.Standing.Tracking(b.ID))
	assert.Zero(t, gs.Standing.Elapsed(t0.Add(300*time.Millisecond)))

	sys.Update(gs, frameAt(700*time.Millisecond))
	assert.False(t, b.Complete())
	sys.Update(gs, frameAt(800*time.Millisecond))
	assert.True(t, b.Complete())
	assert.False(t, a.Complete())
}

func TestStandingOnTwoTargetsTracksOne(t *testing.T) {
	gs := newState(core.ModeCleanup)
	a := addTargetUnderPlayer(gs, 1000)
	b := addTarget(gs, 1001, gs.Player.Rect.X+5, gs.Player.Rect.Y+5)
	sys := NewCollectSystem()

	for ms := 0; ms <= 600; ms += 16 {
		sys.Update(gs, frameAt(time.Duration(ms)*time.Millisecond))
		if gs.Standing.Active() {
			assert.True(t, gs.Standing.ObjectID == a.ID || gs.Standing.ObjectID == b.ID)
		}
	}
	assert.Equal(t, 1, gs.Player.Score, "overlapping two objects does not parallelize completion")
	assert.True(t, a.Complete() != b.Complete())
}

func TestCompletedTargetsAreIgnored(t *testing.T) {
	gs := newState(core.ModeCleanup)
	target := addTargetUnderPlayer(gs, 1000)
	target.SetComplete(true)

	NewCollectSystem().Update(gs, frameAt(0))
	assert.False(t, gs.Standing.Active())
}

func TestScenerySkippedForCollection(t *testing.T) {
	gs := newState(core.ModePlanting)
	// A collectible in planting mode is not a target
	gs.Targets = append(gs.Targets, &components.GameObject{ID: 1000, Kind: components.KindCan, Rect: gs.Player.Rect})

	NewCollectSystem().Update(gs, frameAt(0))
	assert.False(t, gs.Standing.Active())
}

func TestMischiefElsewhereKeepsTrackedTimer(t *testing.T) {
	gs := newState(core.ModeCleanup)
	tracked := addTargetUnderPlayer(gs, 1000)
	other := addTarget(gs, 1001, 600, 100)
	other.SetComplete(true)
	addAdversary(gs, 2000, 610, 110)

	collect := NewCollectSystem()
	mischief := NewMischiefSystem()
	mischief.Chance = 1

	collect.Update(gs, frameAt(0))
	since := gs.Standing.Since

	mischief.Update(gs, frameAt(200*time.Millisecond))
	require.False(t, other.Complete(), "mischief reverted the other object")

	collect.Update(gs, frameAt(300*time.Millisecond))
	assert.True(t, gs.Standing.Tracking(tracked.ID))
	assert.Equal(t, since, gs.Standing.Since)

	collect.Update(gs, frameAt(500*time.Millisecond))
	assert.True(t, tracked.Complete())
}
