package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/eco-fighter/components"
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/render"
)

// celebrationPeriodMs is the half-period of the end-screen idle animations
const celebrationPeriodMs = 250

// celebrationStep alternates 0/1 on real time so end screens animate while game time is frozen
func celebrationStep(ctx render.RenderContext) int {
	return int(ctx.RealTime.UnixMilli()/celebrationPeriodMs) % 2
}

// AdversaryRenderer draws alive bad citizens; after a loss they wave
type AdversaryRenderer struct{}

// NewAdversaryRenderer creates an adversary renderer
func NewAdversaryRenderer() *AdversaryRenderer {
	return &AdversaryRenderer{}
}

// Render implements SystemRenderer
func (r *AdversaryRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	waving := ctx.Phase == engine.PhaseLost
	for _, adv := range ctx.State.Adversaries {
		if !adv.Alive {
			continue
		}
		color := render.RgbAdversary[adv.Variant%len(render.RgbAdversary)]
		x0, y0, x1, _ := ctx.RectToScreen(adv.Rect)

		head := '☹'
		if waving {
			head = '☺'
		}
		cx := x0 + (x1-x0)/2
		buf.SetFgOnly(cx, y0, head, color, tcell.AttrBold)

		switch {
		case waving && celebrationStep(ctx) == 0:
			buf.SetFgOnly(cx-1, y0, '\\', color, 0)
			buf.SetFgOnly(cx+1, y0, '/', color, 0)
		case waving:
			buf.SetFgOnly(cx-1, y0, '/', color, 0)
			buf.SetFgOnly(cx+1, y0, '\\', color, 0)
		case adv.Facing == components.DirLeft:
			buf.SetFgOnly(cx-1, y0, '◂', color, 0)
		default:
			buf.SetFgOnly(cx+1, y0, '▸', color, 0)
		}
	}
}

// PlayerRenderer draws the ranger; after a win the ranger bounces
type PlayerRenderer struct{}

// NewPlayerRenderer creates a player renderer
func NewPlayerRenderer() *PlayerRenderer {
	return &PlayerRenderer{}
}

// Render implements SystemRenderer
func (r *PlayerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := &ctx.State.Player
	x0, y0, x1, y1 := ctx.RectToScreen(p.Rect)
	if ctx.Phase == engine.PhaseWon && celebrationStep(ctx) == 1 {
		y0--
		y1--
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			buf.SetWithBg(x, y, ' ', render.RgbPlayerAccent, render.RgbPlayer)
		}
	}

	// Eye on the facing edge
	cy := y0 + (y1-y0)/2
	switch p.Facing {
	case components.DirLeft:
		buf.SetWithBg(x0, cy, '◀', render.RgbPlayerAccent, render.RgbPlayer)
	case components.DirUp:
		buf.SetWithBg(x0+(x1-x0)/2, y0, '▲', render.RgbPlayerAccent, render.RgbPlayer)
	case components.DirDown:
		buf.SetWithBg(x0+(x1-x0)/2, y1-1, '▼', render.RgbPlayerAccent, render.RgbPlayer)
	default:
		buf.SetWithBg(x1-1, cy, '▶', render.RgbPlayerAccent, render.RgbPlayer)
	}
}

// AttackRenderer tints the melee reach while an attack is active
type AttackRenderer struct{}

// NewAttackRenderer creates an attack reach renderer
func NewAttackRenderer() *AttackRenderer {
	return &AttackRenderer{}
}

// IsVisible implements VisibilityToggle
func (r *AttackRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.State.Player.AttackActive && ctx.Phase.InAttempt()
}

// Render implements SystemRenderer
func (r *AttackRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	reach := ctx.State.Player.ReachRect()
	x0, y0, x1, y1 := ctx.RectToScreen(reach)
	glyph := attackGlyph(ctx.State.Player.Facing)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			buf.Set(x, y, 0, render.RgbAttack, render.RgbAttack, render.BlendAlphaBg, 0.5, 0)
			buf.SetFgOnly(x, y, glyph, render.RgbAttack, tcell.AttrBold)
		}
	}
}

func attackGlyph(d components.Direction) rune {
	if d == components.DirUp || d == components.DirDown {
		return '┆'
	}
	return '┄'
}
