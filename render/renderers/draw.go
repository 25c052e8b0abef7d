// Package renderers holds the layer renderers registered with the orchestrator
package renderers

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/eco-fighter/render"
	"github.com/lixenwraith/eco-fighter/vmath"
)

// fillWorldRect paints the cells covered by a canvas rect with glyph over bg
func fillWorldRect(ctx render.RenderContext, buf *render.RenderBuffer, r vmath.Rect, glyph rune, fg, bg render.RGB) {
	x0, y0, x1, y1 := ctx.RectToScreen(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			buf.SetWithBg(x, y, glyph, fg, bg)
		}
	}
}

// glyphWorldRect writes glyph on every covered cell, keeping the background
func glyphWorldRect(ctx render.RenderContext, buf *render.RenderBuffer, r vmath.Rect, glyph rune, fg render.RGB, attrs tcell.AttrMask) {
	x0, y0, x1, y1 := ctx.RectToScreen(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			buf.SetFgOnly(x, y, glyph, fg, attrs)
		}
	}
}

// shadeField passes every play-field color through fn; HUD rows are untouched
func shadeField(ctx render.RenderContext, buf *render.RenderBuffer, fn func(render.RGB) render.RGB) {
	for y := ctx.GameY; y < ctx.GameBottom(); y++ {
		for x := ctx.GameX; x < ctx.GameRight(); x++ {
			c := buf.Get(x, y)
			buf.Set(x, y, 0, fn(c.Fg), fn(c.Bg), render.BlendReplace, 1, 0)
		}
	}
}

// centerText draws s centered on row y within [x0, x0+width)
func centerText(buf *render.RenderBuffer, x0, width, y int, s string, fg render.RGB, attrs tcell.AttrMask) {
	n := utf8.RuneCountInString(s)
	x := x0 + (width-n)/2
	if x < x0 {
		x = x0
	}
	buf.DrawText(x, y, s, fg, attrs)
}

// drawPanel draws a bordered box with a centered title; returns the inner origin
func drawPanel(buf *render.RenderBuffer, x, y, w, h int, title string, edge render.RGB) (int, int) {
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			buf.SetWithBg(x+i, y+j, ' ', render.RgbText, render.RgbOverlayBg)
		}
	}

	buf.SetWithBg(x, y, '╔', edge, render.RgbOverlayBg)
	buf.SetWithBg(x+w-1, y, '╗', edge, render.RgbOverlayBg)
	buf.SetWithBg(x, y+h-1, '╚', edge, render.RgbOverlayBg)
	buf.SetWithBg(x+w-1, y+h-1, '╝', edge, render.RgbOverlayBg)
	for i := 1; i < w-1; i++ {
		buf.SetWithBg(x+i, y, '═', edge, render.RgbOverlayBg)
		buf.SetWithBg(x+i, y+h-1, '═', edge, render.RgbOverlayBg)
	}
	for j := 1; j < h-1; j++ {
		buf.SetWithBg(x, y+j, '║', edge, render.RgbOverlayBg)
		buf.SetWithBg(x+w-1, y+j, '║', edge, render.RgbOverlayBg)
	}

	if title != "" {
		centerText(buf, x, w, y, " "+title+" ", edge, tcell.AttrBold)
	}
	return x + 2, y + 2
}
