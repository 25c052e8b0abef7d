package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/eco-fighter/components"
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/render"
	"github.com/lixenwraith/eco-fighter/vmath"
)

// SceneryRenderer draws the static decor: buildings, vehicles, trees and lamps
type SceneryRenderer struct{}

// NewSceneryRenderer creates a scenery renderer
func NewSceneryRenderer() *SceneryRenderer {
	return &SceneryRenderer{}
}

// Render implements SystemRenderer
func (r *SceneryRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, obj := range ctx.State.Scenery {
		switch obj.Kind {
		case components.KindBuilding:
			r.renderBuilding(ctx, buf, obj)
		case components.KindVehicle:
			r.renderVehicle(ctx, buf, obj)
		case components.KindTree:
			r.renderTree(ctx, buf, obj)
		case components.KindLamp:
			r.renderLamp(ctx, buf, obj)
		}
	}
}

// renderBuilding fills the wall and overlays the window bitmap frozen at generation
func (r *SceneryRenderer) renderBuilding(ctx render.RenderContext, buf *render.RenderBuffer, obj *components.GameObject) {
	fillWorldRect(ctx, buf, obj.Rect, ' ', render.RgbText, render.RgbBuildingWall)

	x0, y0, x1, _ := ctx.RectToScreen(obj.Rect)
	for x := x0; x < x1; x++ {
		buf.SetWithBg(x, y0, '▀', render.RgbBuildingEdge, render.RgbBuildingWall)
	}

	if obj.WindowCols == 0 {
		return
	}
	for i, lit := range obj.Windows {
		col, row := i%obj.WindowCols, i/obj.WindowCols
		win := vmath.Rect{
			X: obj.Rect.X + float64(col)*constants.WindowCellWidth + 4,
			Y: obj.Rect.Y + float64(row)*constants.WindowCellHeight + 6,
			W: constants.WindowCellWidth - 8,
			H: constants.WindowCellHeight - 12,
		}
		color := render.RgbWindowDark
		if lit {
			color = render.RgbWindowLit
		}
		wx, wy := ctx.WorldToScreen(win.Center())
		buf.SetWithBg(wx, wy, '▪', color, render.RgbBuildingWall)
	}

	// Door at the bottom center
	door := vmath.Vec2{X: obj.Rect.X + obj.Rect.W/2, Y: obj.Rect.Y + obj.Rect.H - 1}
	dx, dy := ctx.WorldToScreen(door)
	if dx >= x0 && dx < x1 {
		buf.SetWithBg(dx, dy, '▯', render.RgbBuildingEdge, render.RgbBuildingWall)
	}
}

func (r *SceneryRenderer) renderVehicle(ctx render.RenderContext, buf *render.RenderBuffer, obj *components.GameObject) {
	fillWorldRect(ctx, buf, obj.Rect, ' ', render.RgbText, render.RgbVehicleBody)
	x0, y0, x1, y1 := ctx.RectToScreen(obj.Rect)
	if x1-x0 >= 3 {
		buf.SetWithBg(x0+1, y0, '▄', render.RgbVehicleWindow, render.RgbVehicleBody)
	}
	buf.SetFgOnly(x0, y1-1, '●', render.RGBBlack, tcell.AttrBold)
	buf.SetFgOnly(x1-1, y1-1, '●', render.RGBBlack, tcell.AttrBold)
}

func (r *SceneryRenderer) renderTree(ctx render.RenderContext, buf *render.RenderBuffer, obj *components.GameObject) {
	x0, y0, x1, y1 := ctx.RectToScreen(obj.Rect)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if y == y1-1 && y1-y0 > 1 {
				buf.SetFgOnly(x, y, '┃', render.RgbTreeTrunk, 0)
				continue
			}
			buf.SetFgOnly(x, y, '♣', render.RgbTreeLeaf, tcell.AttrBold)
		}
	}
}

// lampHaloAlpha tints the cells beside a lamp head
const lampHaloAlpha = 0.25

func (r *SceneryRenderer) renderLamp(ctx render.RenderContext, buf *render.RenderBuffer, obj *components.GameObject) {
	x0, y0, _, y1 := ctx.RectToScreen(obj.Rect)
	buf.SetFgOnly(x0, y0, '☼', render.RgbLampLight, tcell.AttrBold)
	buf.Set(x0-1, y0, 0, render.RgbLampLight, render.RgbLampLight, render.BlendAlpha, lampHaloAlpha, 0)
	buf.Set(x0+1, y0, 0, render.RgbLampLight, render.RgbLampLight, render.BlendAlpha, lampHaloAlpha, 0)
	for y := y0 + 1; y < y1; y++ {
		buf.SetFgOnly(x0, y, '│', render.RgbLampPost, 0)
	}
}
