package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/events"
)

// AudioPlayer is the part of the audio service the context toggles
type AudioPlayer interface {
	ToggleMute() bool
	IsMuted() bool
}

// GameContext ties the session to its presentation: screen geometry,
// event routing, notices and audio
type GameContext struct {
	// ===== Immutable After Init =====

	Session *Session
	Router  *events.Router[*GameState]
	Notices *NoticeBoard

	// ===== Atomic (Self-Synchronized) =====

	FrameNumber atomic.Int64 // Render frame counter; incremented by the loop
	IsMuted     atomic.Bool

	// ===== Main-Loop Exclusive =====

	Width, Height         int // Terminal dimensions
	GameX, GameY          int // Game area offset from terminal origin
	GameWidth, GameHeight int // Game area dimensions (excluding HUD rows)

	audio AudioPlayer
}

// NewGameContext wires routing and notices around a session
func NewGameContext(s *Session, width, height int) *GameContext {
	ctx := &GameContext{
		Session: s,
		Router:  events.NewRouter[*GameState](s.State.Events),
		Notices: NewNoticeBoard(),
		Width:   width,
		Height:  height,
	}
	ctx.Router.Register(ctx.Notices)
	ctx.updateGameArea()
	return ctx
}

// State is shorthand for the session's game state
func (ctx *GameContext) State() *GameState {
	return ctx.Session.State
}

// RegisterEventHandler adds a handler to the router
func (ctx *GameContext) RegisterEventHandler(h events.Handler[*GameState]) {
	ctx.Router.Register(h)
}

// DispatchEvents routes everything queued since the last dispatch
func (ctx *GameContext) DispatchEvents() {
	ctx.Router.DispatchAll(ctx.Session.State)
}

// ===== Screen =====

func (ctx *GameContext) updateGameArea() {
	gameHeight := ctx.Height - constants.BottomMargin - constants.TopMargin
	if gameHeight < 1 {
		gameHeight = 1
	}

	ctx.GameX = 0
	ctx.GameY = constants.TopMargin
	ctx.GameWidth = max(ctx.Width, 1)
	ctx.GameHeight = gameHeight
}

// HandleResize applies new terminal dimensions
// World coordinates are resolution independent, so nothing in the state moves
func (ctx *GameContext) HandleResize(width, height int) {
	ctx.Width = width
	ctx.Height = height
	ctx.updateGameArea()
}

// ===== Frame =====

// GetFrameNumber returns the current render frame
func (ctx *GameContext) GetFrameNumber() int64 {
	return ctx.FrameNumber.Load()
}

// IncrementFrameNumber advances the render frame counter
func (ctx *GameContext) IncrementFrameNumber() int64 {
	return ctx.FrameNumber.Add(1)
}

// ===== Audio =====

// SetAudio attaches the audio player; nil leaves the game silent
func (ctx *GameContext) SetAudio(p AudioPlayer) {
	ctx.audio = p
	if p != nil {
		ctx.IsMuted.Store(p.IsMuted())
	}
}

// ToggleAudioMute toggles the mute state, returning the new state
func (ctx *GameContext) ToggleAudioMute() bool {
	if ctx.audio == nil {
		muted := !ctx.IsMuted.Load()
		ctx.IsMuted.Store(muted)
		return muted
	}
	muted := ctx.audio.ToggleMute()
	ctx.IsMuted.Store(muted)
	return muted
}
