package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/core"
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/render"
)

const (
	panelMinWidth = 40
	panelMaxWidth = 70

	// backdropDim darkens the frozen field behind modal windows
	backdropDim = 0.5
)

var spinner = [...]rune{'◐', '◓', '◑', '◒'}

// panel is one modal window: title, body lines and a hint row
type panel struct {
	title string
	lines []string
	hint  string
	edge  render.RGB
}

// OverlayRenderer draws the modal window for every phase that is not plain gameplay
type OverlayRenderer struct{}

// NewOverlayRenderer creates a new overlay renderer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// IsVisible returns true when the phase has a modal window
func (r *OverlayRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Phase != engine.PhaseRunning
}

// Render implements SystemRenderer
func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	var p panel
	switch ctx.Phase {
	case engine.PhaseIdle:
		p = r.difficultyPanel(ctx)
	case engine.PhaseBriefing:
		p = r.briefingPanel(ctx)
	case engine.PhasePaused:
		p = panel{title: "PAUSED", lines: []string{constants.PausedText}, edge: render.RgbOverlayEdge}
	case engine.PhaseWon:
		p = r.wonPanel(ctx)
	case engine.PhaseLost:
		p = r.lostPanel(ctx)
	case engine.PhaseWatchingAd:
		frame := spinner[int(ctx.RealTime.UnixMilli()/150)%len(spinner)]
		p = panel{
			title: "SPONSOR MESSAGE",
			lines: []string{fmt.Sprintf("%c Your ad is playing...", frame), fmt.Sprintf("+%d XP when it finishes", constants.AdWatchBonusXP)},
			edge:  render.RgbHudXP,
		}
	case engine.PhaseConfirmExit:
		p = panel{
			title: constants.ConfirmExitTitle,
			lines: []string{fmt.Sprintf("XP banked this session: %d", ctx.Session.Ledger.Balance()), "", constants.ConfirmExitText},
			edge:  render.RgbNotice,
		}
	case engine.PhaseExited:
		p = panel{title: "SEE YOU SOON", lines: []string{"Returning to " + ctx.Session.Round().LocationName + "..."}, edge: render.RgbOverlayEdge}
	default:
		return
	}
	r.shadeBackdrop(ctx, buf)
	r.drawPanel(ctx, buf, p)
}

// shadeBackdrop grays the field after a loss and dims it behind other windows;
// a won scene keeps full color for the celebration
func (r *OverlayRenderer) shadeBackdrop(ctx render.RenderContext, buf *render.RenderBuffer) {
	switch ctx.Phase {
	case engine.PhaseWon:
	case engine.PhaseLost:
		shadeField(ctx, buf, render.Grayscale)
	default:
		shadeField(ctx, buf, func(c render.RGB) render.RGB { return render.Scale(c, backdropDim) })
	}
}

func (r *OverlayRenderer) difficultyPanel(ctx render.RenderContext) panel {
	round := ctx.Session.Round()
	goal := "Pick up every piece of trash before time runs out."
	if ctx.State.Mode == core.ModePlanting {
		goal = "Plant a tree on every marked spot before time runs out."
	}
	lines := []string{round.LocationName, goal, "", "Choose difficulty:"}
	for i, d := range core.Difficulties {
		marker := "  "
		if d == ctx.State.Difficulty {
			marker = "▶ "
		}
		lines = append(lines, fmt.Sprintf("%s%d  %s", marker, i+1, d))
	}
	return panel{
		title: round.Title,
		lines: lines,
		hint:  "1/2/3 choose   enter start   q exit",
		edge:  render.RgbOverlayEdge,
	}
}

func (r *OverlayRenderer) briefingPanel(ctx render.RenderContext) panel {
	b := &ctx.Session.Briefing
	hint := ""
	if b.LineDone(ctx.RealTime) {
		hint = "enter ▸"
		if b.Last() {
			hint = "enter  start!"
		}
	}
	return panel{
		title: fmt.Sprintf("BRIEFING  %d/%d", b.Index+1, len(b.Lines)),
		lines: []string{b.Visible(ctx.RealTime)},
		hint:  hint,
		edge:  render.RgbOverlayEdge,
	}
}

func (r *OverlayRenderer) wonPanel(ctx render.RenderContext) panel {
	rw := ctx.Session.LastReward()
	return panel{
		title: "SCENE CLEARED",
		lines: []string{
			fmt.Sprintf("Targets completed: %d", rw.Score),
			fmt.Sprintf("Base XP:   %d", rw.Base),
			fmt.Sprintf("Win bonus: %d", rw.Bonus),
			fmt.Sprintf("Total:     +%d XP", rw.Total),
		},
		hint: "enter next scene   c claim & exit",
		edge: render.RgbWin,
	}
}

func (r *OverlayRenderer) lostPanel(ctx render.RenderContext) panel {
	gs := ctx.State
	return panel{
		title: "TIME'S UP",
		lines: []string{
			fmt.Sprintf("Completed %d of %d", gs.CompletedCount(), len(gs.Targets)),
			fmt.Sprintf("Watch a short ad for +%d XP and the next scene.", constants.AdWatchBonusXP),
		},
		hint: "r watch ad   c claim & exit",
		edge: render.RgbLose,
	}
}

func (r *OverlayRenderer) drawPanel(ctx render.RenderContext, buf *render.RenderBuffer, p panel) {
	width := panelMinWidth
	for _, l := range p.lines {
		width = max(width, len([]rune(l))+6)
	}
	width = min(width, panelMaxWidth, ctx.ScreenWidth)
	height := len(p.lines) + 4
	if p.hint != "" {
		height++
	}
	height = min(height, ctx.ScreenHeight)
	if width < 4 || height < 3 {
		return
	}

	x := (ctx.ScreenWidth - width) / 2
	y := (ctx.ScreenHeight - height) / 2
	_, innerY := drawPanel(buf, x, y, width, height, p.title, p.edge)

	for i, l := range p.lines {
		if innerY+i >= y+height-1 {
			break
		}
		centerText(buf, x+1, width-2, innerY+i, truncate(l, width-4), render.RgbText, 0)
	}
	if p.hint != "" {
		centerText(buf, x+1, width-2, y+height-2, p.hint, p.edge, tcell.AttrBold)
	}
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
