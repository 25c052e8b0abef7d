package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/eco-fighter/components"
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/render"
)

const (
	// ghostAlpha is the opacity of the target the player is dwelling on
	ghostAlpha = 0.45

	// dwellGlowMax is the additive glow on a tracked target at full progress
	dwellGlowMax = 0.35
)

// progressRing are the dwell ring glyphs, filled clockwise
var progressRing = [constants.ProgressRingFrames]rune{'◔', '◑', '◕', '●'}

// TargetRenderer draws targets: the tracked one ghosted under a progress ring
// and glowing as it fills, completed ones opaque and bold
type TargetRenderer struct{}

// NewTargetRenderer creates a target renderer
func NewTargetRenderer() *TargetRenderer {
	return &TargetRenderer{}
}

// Render implements SystemRenderer
func (r *TargetRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	gs := ctx.State
	for _, obj := range gs.Targets {
		glyph, color := targetLook(obj)

		switch {
		case obj.Complete():
			glyphWorldRect(ctx, buf, obj.Rect, glyph, color, tcell.AttrBold)
		case gs.Standing.Tracking(obj.ID):
			progress := gs.Standing.Elapsed(ctx.GameTime).Seconds() / constants.DwellDuration.Seconds()
			progress = min(max(progress, 0), 1)
			r.renderTracked(ctx, buf, obj, glyph, color, progress)
			r.renderRing(ctx, buf, obj, progress)
		default:
			glyphWorldRect(ctx, buf, obj.Rect, glyph, color, 0)
		}
	}
}

func (r *TargetRenderer) renderTracked(ctx render.RenderContext, buf *render.RenderBuffer, obj *components.GameObject, glyph rune, color render.RGB, progress float64) {
	x0, y0, x1, y1 := ctx.RectToScreen(obj.Rect)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			bg := buf.Get(x, y).Bg
			buf.Set(x, y, glyph, render.Blend(bg, color, ghostAlpha), render.RGB{}, render.BlendFgOnly, 1, 0)
			buf.Set(x, y, 0, render.RgbDwellRing, render.RgbDwellRing, render.BlendAdd, progress*dwellGlowMax, 0)
		}
	}
}

func (r *TargetRenderer) renderRing(ctx render.RenderContext, buf *render.RenderBuffer, obj *components.GameObject, progress float64) {
	idx := int(progress * float64(len(progressRing)))
	idx = min(max(idx, 0), len(progressRing)-1)

	cx, cy := ctx.WorldToScreen(obj.Rect.Center())
	buf.SetFgOnly(cx, cy-1, progressRing[idx], render.RgbDwellRing, tcell.AttrBold)
}

// targetLook returns the glyph and color for a target kind in its current state
func targetLook(obj *components.GameObject) (rune, render.RGB) {
	switch obj.Kind {
	case components.KindBottle:
		return 'ɓ', render.RgbBottle
	case components.KindCan:
		return 'ʊ', render.RgbCan
	case components.KindPlantSpot:
		if obj.Planted {
			return '♠', render.RgbSapling
		}
		return '∴', render.RgbPlantSpot
	default:
		return '⁂', render.RgbTrash
	}
}
