package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/eco-fighter/core"
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/ledger"
	"github.com/lixenwraith/eco-fighter/service"
	"github.com/lixenwraith/eco-fighter/vmath"
)

type recorder struct {
	name string
	log  *[]string
	show bool
}

func (r recorder) Render(ctx RenderContext, buf *RenderBuffer) { *r.log = append(*r.log, r.name) }

type hidden struct{ recorder }

func (h hidden) IsVisible(RenderContext) bool { return h.show }

func newGameContext(t *testing.T, w, h int) *engine.GameContext {
	t.Helper()
	l := ledger.New("acct", nil, zerolog.Nop())
	clock := engine.NewPausableClockWith(engine.NewMockTimeProvider(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)))
	s := engine.NewSession(engine.SessionConfig{Round: service.DefaultRound, Seed: 3}, l, nil, engine.Collaborators{}, clock, zerolog.Nop())
	return engine.NewGameContext(s, w, h)
}

func TestOrchestratorOrdersByPriorityThenRegistration(t *testing.T) {
	var log []string
	o := NewRenderOrchestrator(nil, 10, 5)
	o.Register(recorder{name: "hud", log: &log}, PriorityUI)
	o.Register(recorder{name: "bg", log: &log}, PriorityBackground)
	o.Register(recorder{name: "player", log: &log}, PriorityPlayer)
	o.Register(recorder{name: "hud2", log: &log}, PriorityUI)
	o.Register(hidden{recorder{name: "overlay", log: &log, show: false}}, PriorityOverlay)

	o.RenderFrame(newGameContext(t, 10, 5))
	assert.Equal(t, []string{"bg", "player", "hud", "hud2"}, log)
}

func TestOrchestratorFollowsResize(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	gc := newGameContext(t, 20, 10)
	o := NewRenderOrchestrator(screen, 20, 10)
	gc.HandleResize(40, 12)
	o.RenderFrame(gc)

	w, h := o.Buffer().Bounds()
	assert.Equal(t, 40, w)
	assert.Equal(t, 12, h)
}

func TestRenderContextProjection(t *testing.T) {
	gc := newGameContext(t, 80, 24)
	ctx := NewRenderContextFromGame(gc)
	require.Equal(t, 80, ctx.GameWidth)
	require.Equal(t, 22, ctx.GameHeight)
	assert.Equal(t, engine.PhaseIdle, ctx.Phase)
	assert.Equal(t, core.ModeCleanup, ctx.State.Mode)

	x, y := ctx.WorldToScreen(vmath.Vec2{X: 0, Y: 0})
	assert.Equal(t, 0, x)
	assert.Equal(t, ctx.GameY, y)

	x, y = ctx.WorldToScreen(vmath.Vec2{X: 400, Y: 300})
	assert.Equal(t, 40, x)
	assert.Equal(t, ctx.GameY+11, y)

	// A tiny rect still covers one cell
	x0, y0, x1, y1 := ctx.RectToScreen(vmath.Rect{X: 100, Y: 100, W: 1, H: 1})
	assert.Equal(t, 1, x1-x0)
	assert.Equal(t, 1, y1-y0)
	assert.Equal(t, ctx.GameBottom(), ctx.GameY+ctx.GameHeight)
}
