package renderers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/eco-fighter/components"
	"github.com/lixenwraith/eco-fighter/content"
	"github.com/lixenwraith/eco-fighter/core"
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/ledger"
	"github.com/lixenwraith/eco-fighter/render"
	"github.com/lixenwraith/eco-fighter/service"
	"github.com/lixenwraith/eco-fighter/vmath"
)

type harness struct {
	gc   *engine.GameContext
	o    *render.RenderOrchestrator
	time *engine.MockTimeProvider
}

func newHarness(t *testing.T, mode core.Mode) *harness {
	t.Helper()
	tp := engine.NewMockTimeProvider(time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC))
	round := service.Round{ID: "r1", Mode: mode, LocationName: "Dune Sea", Title: "Test Round"}
	l := ledger.New("acct", nil, zerolog.Nop())
	s := engine.NewSession(engine.SessionConfig{Round: round, Seed: 11}, l, nil, engine.Collaborators{}, engine.NewPausableClockWith(tp), zerolog.Nop())
	gc := engine.NewGameContext(s, 80, 24)
	o := render.NewRenderOrchestrator(nil, 80, 24)
	RegisterAll(o)
	return &harness{gc: gc, o: o, time: tp}
}

func (h *harness) run(t *testing.T) {
	t.Helper()
	s := h.gc.Session
	require.True(t, s.Begin())
	for s.Phase() == engine.PhaseBriefing {
		h.time.Advance(content.RevealDuration(s.Briefing.Current()))
		require.True(t, s.AdvanceBriefing())
	}
	require.Equal(t, engine.PhaseRunning, s.Phase())
}

func (h *harness) frame() *render.RenderBuffer {
	h.o.RenderFrame(h.gc)
	return h.o.Buffer()
}

// screenText returns the buffer contents as lines
func screenText(buf *render.RenderBuffer) []string {
	w, hgt := buf.Bounds()
	lines := make([]string, hgt)
	for y := 0; y < hgt; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			r := buf.Get(x, y).Rune
			if r == 0 {
				r = ' '
			}
			sb.WriteRune(r)
		}
		lines[y] = sb.String()
	}
	return lines
}

func containsText(buf *render.RenderBuffer, s string) bool {
	for _, l := range screenText(buf) {
		if strings.Contains(l, s) {
			return true
		}
	}
	return false
}

func TestIdleShowsDifficultySelect(t *testing.T) {
	h := newHarness(t, core.ModeCleanup)
	require.True(t, h.gc.Session.SelectDifficulty(core.DifficultyMedium))
	buf := h.frame()

	assert.True(t, containsText(buf, "Test Round"))
	assert.True(t, containsText(buf, "▶ 2  medium"))
	assert.True(t, containsText(buf, "1  easy"))
}

func TestBriefingRevealsOnRealTime(t *testing.T) {
	h := newHarness(t, core.ModePlanting)
	require.True(t, h.gc.Session.Begin())

	first := content.Script(core.ModePlanting, 1)[0]
	buf := h.frame()
	assert.False(t, containsText(buf, first), "nothing revealed yet")

	h.time.Advance(content.RevealDuration(first))
	buf = h.frame()
	assert.True(t, containsText(buf, first))
	assert.True(t, containsText(buf, "enter"))
}

func TestRunningDrawsWorldAndHUD(t *testing.T) {
	h := newHarness(t, core.ModeCleanup)
	h.run(t)
	buf := h.frame()

	top := screenText(buf)[0]
	assert.Contains(t, top, "ECO FIGHTER")
	assert.Contains(t, top, "Scene 1")
	assert.Contains(t, top, "Targets 0/")
	assert.Contains(t, top, "XP 0")
	assert.False(t, containsText(buf, "PAUSED"))

	// Player cells carry the player color
	ctx := render.NewRenderContextFromGame(h.gc)
	px, py := ctx.WorldToScreen(h.gc.State().Player.Rect.Center())
	assert.Equal(t, render.RgbPlayer, buf.Get(px, py).Bg)

	// Ocean occupies the right side of the field
	assert.Equal(t, render.Lerp(render.RgbOceanShallow, render.RgbOceanDeep, 1.0/24.0).R, buf.Get(57, 5).Bg.R)
}

func TestCompletedItemsStayOpaque(t *testing.T) {
	h := newHarness(t, core.ModeCleanup)
	h.run(t)
	gs := h.gc.State()
	gs.Targets = []*components.GameObject{{ID: 900, Kind: components.KindCan, Rect: vmath.Rect{X: 300, Y: 300, W: 22, H: 22}}}

	ctx := render.NewRenderContextFromGame(h.gc)
	x, y := ctx.WorldToScreen(vmath.Vec2{X: 305, Y: 305})

	buf := h.frame()
	outstanding := buf.Get(x, y)
	assert.Equal(t, 'ʊ', outstanding.Rune)
	assert.Equal(t, render.RgbCan, outstanding.Fg, "untracked target is drawn at full color")
	assert.Equal(t, tcell.AttrMask(0), outstanding.Attrs)

	gs.Targets[0].SetComplete(true)
	buf = h.frame()
	done := buf.Get(x, y)
	assert.Equal(t, 'ʊ', done.Rune)
	assert.Equal(t, render.RgbCan, done.Fg)
	assert.Equal(t, tcell.AttrBold, done.Attrs)
}

func TestAllCollectedItemsRemainVisible(t *testing.T) {
	h := newHarness(t, core.ModeCleanup)
	h.run(t)
	gs := h.gc.State()
	require.NotEmpty(t, gs.Targets)
	for _, o := range gs.Targets {
		o.SetComplete(true)
	}

	buf := h.frame()
	glyphs := 0
	for _, l := range screenText(buf) {
		glyphs += strings.Count(l, "ɓ") + strings.Count(l, "ʊ") + strings.Count(l, "⁂")
	}
	assert.Positive(t, glyphs)
}

func TestOnlyTrackedTargetIsGhosted(t *testing.T) {
	h := newHarness(t, core.ModeCleanup)
	h.run(t)
	gs := h.gc.State()
	tracked := &components.GameObject{ID: 910, Kind: components.KindBottle, Rect: vmath.Rect{X: 300, Y: 300, W: 22, H: 22}}
	other := &components.GameObject{ID: 911, Kind: components.KindBottle, Rect: vmath.Rect{X: 300, Y: 400, W: 22, H: 22}}
	gs.Targets = []*components.GameObject{tracked, other}
	gs.Standing.Track(tracked.ID, h.gc.Session.Clock.Now())

	ctx := render.NewRenderContextFromGame(h.gc)
	tx, ty := ctx.WorldToScreen(vmath.Vec2{X: 305, Y: 305})
	ox, oy := ctx.WorldToScreen(vmath.Vec2{X: 305, Y: 405})

	buf := h.frame()
	ghost := buf.Get(tx, ty)
	assert.Equal(t, 'ɓ', ghost.Rune)
	assert.Equal(t, render.Blend(ghost.Bg, render.RgbBottle, ghostAlpha), ghost.Fg)
	assert.Equal(t, render.RgbBottle, buf.Get(ox, oy).Fg)

	// The glow brightens the tracked cell as dwell progresses
	h.time.Advance(400 * time.Millisecond)
	buf = h.frame()
	lit := buf.Get(tx, ty)
	assert.Greater(t, int(lit.Bg.R)+int(lit.Bg.G), int(ghost.Bg.R)+int(ghost.Bg.G))
}

func TestPlantedSpotsTurnOpaque(t *testing.T) {
	h := newHarness(t, core.ModePlanting)
	h.run(t)
	gs := h.gc.State()
	spot := &components.GameObject{ID: 901, Kind: components.KindPlantSpot, Rect: vmath.Rect{X: 300, Y: 300, W: 28, H: 28}}
	gs.Targets = []*components.GameObject{spot}
	gs.Standing.Track(spot.ID, h.gc.Session.Clock.Now())

	ctx := render.NewRenderContextFromGame(h.gc)
	x, y := ctx.WorldToScreen(vmath.Vec2{X: 305, Y: 305})

	buf := h.frame()
	ghost := buf.Get(x, y)
	assert.Equal(t, '∴', ghost.Rune)
	assert.NotEqual(t, render.RgbPlantSpot, ghost.Fg, "spot under dwell is ghosted")

	spot.Planted = true
	gs.Standing.Clear()
	buf = h.frame()
	planted := buf.Get(x, y)
	assert.Equal(t, '♠', planted.Rune)
	assert.Equal(t, render.RgbSapling, planted.Fg)
	assert.Equal(t, tcell.AttrBold, planted.Attrs)
}

func TestDwellRingOverTrackedTarget(t *testing.T) {
	h := newHarness(t, core.ModeCleanup)
	h.run(t)
	gs := h.gc.State()
	item := &components.GameObject{ID: 902, Kind: components.KindTrash, Rect: vmath.Rect{X: 600, Y: 200, W: 22, H: 22}}
	gs.Targets = []*components.GameObject{item}
	gs.Standing.Track(item.ID, h.gc.Session.Clock.Now())
	h.time.Advance(300 * time.Millisecond)

	ctx := render.NewRenderContextFromGame(h.gc)
	cx, cy := ctx.WorldToScreen(item.Rect.Center())
	buf := h.frame()
	assert.Equal(t, progressRing[2], buf.Get(cx, cy-1).Rune)
}

func TestLampHaloTintsNeighbors(t *testing.T) {
	h := newHarness(t, core.ModeCleanup)
	h.run(t)
	gs := h.gc.State()
	gs.Targets = nil
	gs.Scenery = nil

	lamp := &components.GameObject{ID: 950, Kind: components.KindLamp, Rect: vmath.Rect{X: 400, Y: 100, W: 10, H: 60}}
	ctx := render.NewRenderContextFromGame(h.gc)
	x0, y0, _, _ := ctx.RectToScreen(lamp.Rect)

	plain := h.frame()
	left, right := plain.Get(x0-1, y0).Bg, plain.Get(x0+1, y0).Bg

	gs.Scenery = []*components.GameObject{lamp}
	lit := h.frame()
	assert.Equal(t, '☼', lit.Get(x0, y0).Rune)
	assert.Equal(t, render.Blend(left, render.RgbLampLight, lampHaloAlpha), lit.Get(x0-1, y0).Bg)
	assert.Equal(t, render.Blend(right, render.RgbLampLight, lampHaloAlpha), lit.Get(x0+1, y0).Bg)
}

func TestOnlyAliveAdversariesDrawn(t *testing.T) {
	h := newHarness(t, core.ModeCleanup)
	h.run(t)
	gs := h.gc.State()
	alive := &components.GameObject{ID: 50, Kind: components.KindAdversary, Alive: true, Rect: vmath.Rect{X: 200, Y: 250, W: 28, H: 28}}
	gone := &components.GameObject{ID: 51, Kind: components.KindAdversary, Alive: false, Rect: vmath.Rect{X: 200, Y: 400, W: 28, H: 28}}
	gs.Adversaries = []*components.GameObject{alive, gone}

	buf := h.frame()
	heads := 0
	for _, l := range screenText(buf) {
		heads += strings.Count(l, "☹")
	}
	assert.Equal(t, 1, heads)
}

func TestAttackReachVisibleOnlyWhileActive(t *testing.T) {
	h := newHarness(t, core.ModeCleanup)
	h.run(t)
	p := &h.gc.State().Player

	ctx := render.NewRenderContextFromGame(h.gc)
	x0, y0, _, _ := ctx.RectToScreen(p.ReachRect())

	buf := h.frame()
	assert.NotEqual(t, '┄', buf.Get(x0, y0).Rune)

	require.True(t, p.TryAttack(h.gc.Session.Clock.Now()))
	buf = h.frame()
	assert.Equal(t, '┄', buf.Get(x0, y0).Rune)
}

func TestPauseAndEndPanels(t *testing.T) {
	h := newHarness(t, core.ModeCleanup)
	h.run(t)
	s := h.gc.Session

	require.True(t, s.TogglePause())
	assert.True(t, containsText(h.frame(), "PAUSED"))
	require.True(t, s.TogglePause())

	s.State.TimeLeft = 1
	require.True(t, s.Second())
	require.Equal(t, engine.PhaseLost, s.Phase())
	buf := h.frame()
	assert.True(t, containsText(buf, "TIME'S UP"))
	assert.True(t, containsText(buf, "r watch ad"))
}

func TestBackdropDimsAndGrays(t *testing.T) {
	h := newHarness(t, core.ModeCleanup)
	h.run(t)
	s := h.gc.Session
	ctx := render.NewRenderContextFromGame(h.gc)
	x, y := ctx.GameX+1, ctx.GameY+1

	running := h.frame().Get(x, y)

	require.True(t, s.TogglePause())
	paused := h.frame().Get(x, y)
	assert.Equal(t, render.Scale(running.Bg, backdropDim), paused.Bg)
	assert.Equal(t, render.Scale(running.Fg, backdropDim), paused.Fg)
	require.True(t, s.TogglePause())

	s.State.TimeLeft = 1
	require.True(t, s.Second())
	lost := h.frame().Get(x, y)
	assert.Equal(t, render.Grayscale(running.Bg), lost.Bg)

	// HUD row keeps its colors
	assert.Equal(t, render.RgbHudBg, h.frame().Get(0, ctx.GameY-1).Bg)
}

func TestWonPanelShowsReward(t *testing.T) {
	h := newHarness(t, core.ModeCleanup)
	h.run(t)
	s := h.gc.Session
	s.State.Player.Score = 4
	for _, o := range s.State.Targets {
		o.SetComplete(true)
	}
	require.True(t, s.Second())
	require.Equal(t, engine.PhaseWon, s.Phase())

	buf := h.frame()
	assert.True(t, containsText(buf, "SCENE CLEARED"))
	assert.True(t, containsText(buf, "Total:     +12 XP"))
	assert.True(t, containsText(buf, "XP 12"))
}

func TestConfirmExitPanelAndMuteBadge(t *testing.T) {
	h := newHarness(t, core.ModeCleanup)
	h.run(t)
	require.True(t, h.gc.Session.RequestExit(context.Background()))
	h.gc.ToggleAudioMute()

	buf := h.frame()
	assert.True(t, containsText(buf, "Leave the game?"))
	bottom := screenText(buf)[23]
	assert.Contains(t, bottom, "✕")
}
