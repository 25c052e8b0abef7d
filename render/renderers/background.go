package renderers

import (
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/core"
	"github.com/lixenwraith/eco-fighter/render"
)

// BackgroundRenderer paints the mode theme: city and ocean for cleanup, dunes for planting
type BackgroundRenderer struct{}

// NewBackgroundRenderer creates a background renderer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render implements SystemRenderer
func (r *BackgroundRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.GameWidth <= 0 || ctx.GameHeight <= 0 {
		return
	}
	roadY := ctx.WorldYToRow(constants.PlayHeight)

	if ctx.State.Mode == core.ModePlanting {
		r.renderDesert(ctx, buf, roadY)
	} else {
		r.renderBay(ctx, buf, roadY)
	}
	r.renderRoad(ctx, buf, roadY)
}

func (r *BackgroundRenderer) renderBay(ctx render.RenderContext, buf *render.RenderBuffer, roadY int) {
	oceanX := ctx.GameX + int(float64(ctx.GameWidth)*constants.OceanStartFraction)
	buf.FillRect(ctx.GameX, ctx.GameY, oceanX, roadY, render.RgbCityGround)

	// Pavement stripes every few rows
	for y := ctx.GameY; y < roadY; y += 4 {
		for x := ctx.GameX; x < oceanX; x++ {
			buf.SetBgOnly(x, y, render.RgbCityPavement)
		}
	}

	// Ocean: depth gradient left to right, waves drift with game time
	phase := int(ctx.GameTime.UnixMilli() / 400)
	span := max(ctx.GameRight()-oceanX, 1)
	for y := ctx.GameY; y < roadY; y++ {
		for x := oceanX; x < ctx.GameRight(); x++ {
			bg := render.Lerp(render.RgbOceanShallow, render.RgbOceanDeep, float64(x-oceanX)/float64(span))
			if (x+y*3+phase)%7 == 0 {
				buf.SetWithBg(x, y, '~', render.RgbWave, bg)
			} else {
				buf.SetBgOnly(x, y, bg)
			}
		}
	}
}

func (r *BackgroundRenderer) renderDesert(ctx render.RenderContext, buf *render.RenderBuffer, roadY int) {
	buf.FillRect(ctx.GameX, ctx.GameY, ctx.GameRight(), roadY, render.RgbSand)

	// Dune ridges: a shallow zigzag repeated down the field
	for y := ctx.GameY + 2; y < roadY; y += 5 {
		for x := ctx.GameX; x < ctx.GameRight(); x++ {
			dy := (x / 6) % 2
			buf.SetWithBg(x, y+dy, '⌒', render.RgbDuneLine, render.RgbDune)
		}
	}
}

func (r *BackgroundRenderer) renderRoad(ctx render.RenderContext, buf *render.RenderBuffer, roadY int) {
	road := render.RgbRoad
	if ctx.State.Mode == core.ModePlanting {
		road = render.RgbDirtRoad
	}
	buf.FillRect(ctx.GameX, roadY, ctx.GameRight(), ctx.GameBottom(), road)

	mid := roadY + (ctx.GameBottom()-roadY)/2
	if ctx.State.Mode == core.ModePlanting {
		return
	}
	for x := ctx.GameX; x < ctx.GameRight(); x++ {
		if x%6 < 3 {
			buf.SetFgOnly(x, mid, '─', render.RgbRoadStripe, 0)
		}
	}
}
