package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/core"
	"github.com/lixenwraith/eco-fighter/events"
	"github.com/lixenwraith/eco-fighter/vmath"
	"github.com/lixenwraith/eco-fighter/world"
)


func TestSpawnWaitsForInitialDelay(t *testing.T) {
	gs := newState(core.ModeCleanup)
	gs.SpawnSources = []vmath.Vec2{{X: 100, Y: 200}}
	sys := NewSpawnSystem()

	sys.Update(gs, frameAt(constants.InitialSpawnDelay-time.Millisecond))
	assert.Empty(t, gs.Adversaries)

	sys.Update(gs, frameAt(constants.InitialSpawnDelay))
	require.Len(t, gs.Adversaries, 1)

	a := gs.Adversaries[0]
	assert.True(t, a.Alive)
	assert.Equal(t, vmath.Vec2{X: 100, Y: 200}, a.Rect.Pos())
	assert.True(t, world.PlayBounds().Contains(a.Target))
	assert.Equal(t, 1, gs.AdversariesSpawned)
	assert.Equal(t, t0.Add(constants.InitialSpawnDelay+constants.SpawnInterval), gs.NextSpawnAt)

	evs := gs.Events.Consume()
	require.Len(t, evs, 1)
	assert.Equal(t, events.EventAdversarySpawned, evs[0].Type)
}

func TestSpawnRetriesWithoutSources(t *testing.T) {
	gs := newState(core.ModeCleanup)
	gs.SpawnSources = nil
	now := constants.InitialSpawnDelay

	NewSpawnSystem().Update(gs, frameAt(now))
	assert.Empty(t, gs.Adversaries)
	assert.Zero(t, gs.AdversariesSpawned)
	assert.Equal(t, t0.Add(now+constants.SpawnRetryInterval), gs.NextSpawnAt)
}

func TestSpawnRespectsAliveCap(t *testing.T) {
	gs := newState(core.ModeCleanup)
	gs.SpawnSources = []vmath.Vec2{{X: 100, Y: 200}}
	sys := NewSpawnSystem()

	for i := 0; i < 20; i++ {
		sys.Update(gs, frameAt(time.Duration(i)*constants.SpawnInterval+constants.InitialSpawnDelay))
	}
	assert.Equal(t, constants.MaxAliveAdversaries, gs.AliveAdversaries())
	assert.Equal(t, constants.MaxAliveAdversaries, gs.AdversariesSpawned)
}

func TestSpawnLifetimeCapCountsEliminated(t *testing.T) {
	gs := newState(core.ModeCleanup)
	gs.SpawnSources = []vmath.Vec2{{X: 100, Y: 200}, {X: 300, Y: 400}}
	sys := NewSpawnSystem()

	for i := 0; i < 40; i++ {
		sys.Update(gs, frameAt(time.Duration(i)*constants.SpawnInterval+constants.InitialSpawnDelay))
		// Eliminate everyone so only the lifetime cap can stop spawning
		for _, a := range gs.Adversaries {
			a.Alive = false
		}
	}
	assert.Equal(t, constants.MaxSpawnedPerAttempt, gs.AdversariesSpawned)
	assert.Len(t, gs.Adversaries, constants.MaxSpawnedPerAttempt)
	assert.Zero(t, gs.AliveAdversaries())
}

func TestAdversaryCapsOverLongRun(t *testing.T) {
	gs := newState(core.ModeCleanup)
	gs.LoadScene()
	gs.ResetAttempt(t0)
	require.NotEmpty(t, gs.SpawnSources)

	sim := NewDefaultSimulator()
	fr := vmath.NewFastRand(9)
	maxAlive := 0
	for i := 0; i < 60*60*5; i++ { // five minutes of 60Hz frames
		now := t0.Add(time.Duration(i) * constants.FrameInterval)
		in := randomInput(fr)
		sim.Advance(gs, in, now)

		alive := gs.AliveAdversaries()
		maxAlive = max(maxAlive, alive)
		require.LessOrEqual(t, alive, constants.MaxAliveAdversaries)
		require.LessOrEqual(t, gs.AdversariesSpawned, constants.MaxSpawnedPerAttempt)
		gs.Events.Consume()
	}
	assert.Equal(t, constants.MaxAliveAdversaries, maxAlive)
}
