package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/core"
	"github.com/lixenwraith/eco-fighter/render"
)

const (
	audioOnText  = " ♪ "
	audioOffText = " ✕ "
)

// HUDRenderer draws the top status row and the bottom notice row
type HUDRenderer struct{}

// NewHUDRenderer creates a HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// Render implements SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.GameY > 0 {
		r.renderTop(ctx, buf, ctx.GameY-1)
	}
	if bottom := ctx.GameBottom(); bottom < ctx.ScreenHeight {
		r.renderBottom(ctx, buf, bottom)
	}
}

func (r *HUDRenderer) renderTop(ctx render.RenderContext, buf *render.RenderBuffer, y int) {
	gs := ctx.State
	buf.FillRect(0, y, ctx.ScreenWidth, y+1, render.RgbHudBg)

	x := buf.DrawText(0, y, constants.TitleText, render.RgbHudLabel, tcell.AttrBold)

	label := "Cleanup"
	if gs.Mode == core.ModePlanting {
		label = "Planting"
	}
	x = buf.DrawText(x+1, y, fmt.Sprintf("%s  Scene %d  %s", label, gs.Scene, gs.Difficulty), render.RgbText, 0)

	if ctx.Phase.InAttempt() || ctx.Phase.Ended() {
		x = buf.DrawText(x+2, y, fmt.Sprintf("Score %d  Targets %d/%d", gs.Player.Score, gs.CompletedCount(), len(gs.Targets)), render.RgbText, 0)
		x = r.renderTimer(ctx, buf, x+2, y)
	}

	xp := fmt.Sprintf("XP %d ", ctx.Session.Ledger.Balance())
	xpX := ctx.ScreenWidth - len(xp)
	if xpX > x {
		buf.DrawText(xpX, y, xp, render.RgbHudXP, tcell.AttrBold)
	}
}

// renderTimer draws "Time NN" followed by a bar shrinking with the remaining fraction
func (r *HUDRenderer) renderTimer(ctx render.RenderContext, buf *render.RenderBuffer, x, y int) int {
	gs := ctx.State
	fraction := 0.0
	if gs.Tuning.TimeLimit > 0 {
		fraction = float64(gs.TimeLeft) / float64(gs.Tuning.TimeLimit)
	}
	color := render.TimerColor(fraction)
	x = buf.DrawText(x, y, fmt.Sprintf("Time %2d ", gs.TimeLeft), color, tcell.AttrBold)

	const barWidth = 10
	filled := int(fraction*barWidth + 0.5)
	for i := 0; i < barWidth; i++ {
		if i < filled {
			buf.SetFgOnly(x+i, y, '█', color, 0)
		} else {
			buf.SetFgOnly(x+i, y, '░', render.RgbTextDim, 0)
		}
	}
	return x + barWidth
}

func (r *HUDRenderer) renderBottom(ctx render.RenderContext, buf *render.RenderBuffer, y int) {
	buf.FillRect(0, y, ctx.ScreenWidth, y+1, render.RgbHudBg)

	x := 0
	if ctx.IsMuted {
		x = r.drawBadge(buf, x, y, audioOffText, render.RgbAudioMuted)
	} else {
		x = r.drawBadge(buf, x, y, audioOnText, render.RgbAudioUnmuted)
	}
	x++

	notices := ctx.Notices.Active(ctx.GameTime)
	if len(notices) == 0 {
		buf.DrawText(x, y, constants.HelpText, render.RgbTextDim, 0)
		return
	}
	// Newest first, separated by a bullet
	for i := len(notices) - 1; i >= 0 && x < ctx.ScreenWidth; i-- {
		x = buf.DrawText(x, y, notices[i].Text, render.RgbNotice, 0)
		if i > 0 {
			x = buf.DrawText(x, y, " • ", render.RgbTextDim, 0)
		}
	}
}

func (r *HUDRenderer) drawBadge(buf *render.RenderBuffer, x, y int, text string, bg render.RGB) int {
	for _, ch := range text {
		buf.SetWithBg(x, y, ch, render.RGBBlack, bg)
		x++
	}
	return x
}
