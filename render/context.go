package render

import (
	"time"

	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/vmath"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Session *engine.Session
	State   *engine.GameState
	Notices *engine.NoticeBoard
	Phase   engine.Phase

	// Time state
	GameTime time.Time // frozen while not running
	RealTime time.Time // drives briefing reveal and overlay animation
	Frame    int64
	IsMuted  bool

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Game area (canvas projection target) in cells
	GameX, GameY          int
	GameWidth, GameHeight int
}

// NewRenderContextFromGame snapshots the game context for one frame
func NewRenderContextFromGame(gc *engine.GameContext) RenderContext {
	s := gc.Session
	return RenderContext{
		Session:      s,
		State:        s.State,
		Notices:      gc.Notices,
		Phase:        s.Phase(),
		GameTime:     s.Clock.Now(),
		RealTime:     s.Clock.RealTime(),
		Frame:        gc.GetFrameNumber(),
		IsMuted:      gc.IsMuted.Load(),
		ScreenWidth:  gc.Width,
		ScreenHeight: gc.Height,
		GameX:        gc.GameX,
		GameY:        gc.GameY,
		GameWidth:    gc.GameWidth,
		GameHeight:   gc.GameHeight,
	}
}

// WorldToScreen projects a canvas point onto a terminal cell
func (rc *RenderContext) WorldToScreen(p vmath.Vec2) (int, int) {
	x := rc.GameX + int(p.X*float64(rc.GameWidth)/constants.CanvasWidth)
	y := rc.GameY + int(p.Y*float64(rc.GameHeight)/constants.CanvasHeight)
	return x, y
}

// RectToScreen projects a canvas rect onto the half-open cell range [x0,x1)x[y0,y1)
// Every non-empty rect covers at least one cell
func (rc *RenderContext) RectToScreen(r vmath.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = rc.WorldToScreen(r.Pos())
	x1, y1 = rc.WorldToScreen(vmath.Vec2{X: r.X + r.W, Y: r.Y + r.H})
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// WorldYToRow projects a canvas y onto a screen row
func (rc *RenderContext) WorldYToRow(y float64) int {
	return rc.GameY + int(y*float64(rc.GameHeight)/constants.CanvasHeight)
}

// GameRight returns the first column past the game area
func (rc *RenderContext) GameRight() int {
	return rc.GameX + rc.GameWidth
}

// GameBottom returns the first row past the game area
func (rc *RenderContext) GameBottom() int {
	return rc.GameY + rc.GameHeight
}
