// Package modes translates terminal input into session actions for the current phase
package modes

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/eco-fighter/core"
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/input"
)

// InputHandler processes user input events
// Implements engine.EventHandler
type InputHandler struct {
	gc  *engine.GameContext
	log zerolog.Logger
}

// NewInputHandler creates a new input handler
func NewInputHandler(gc *engine.GameContext, log zerolog.Logger) *InputHandler {
	return &InputHandler{
		gc:  gc,
		log: log.With().Str("component", "input").Logger(),
	}
}

// HandleEvent processes a tcell event and returns false once the session has exited
func (h *InputHandler) HandleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.handleIntent(ctx, input.Parse(ev))
	case *tcell.EventResize:
		w, hgt := ev.Size()
		h.gc.HandleResize(w, hgt)
	}
	return !h.gc.Session.Done()
}

// handleIntent routes one intent; intents that do not apply to the phase are dropped
func (h *InputHandler) handleIntent(ctx context.Context, in input.Intent) {
	s := h.gc.Session

	var handled bool
	switch in.Type {
	case input.IntentNone:
		return

	case input.IntentQuit:
		handled = s.Quit(ctx)

	case input.IntentToggleMute:
		muted := h.gc.ToggleAudioMute()
		h.log.Debug().Bool("muted", muted).Msg("audio toggled")
		handled = true

	case input.IntentMove:
		if s.Phase() == engine.PhaseRunning {
			s.Input.Press(in.Key, s.Clock.RealTime())
			handled = true
		}

	case input.IntentAttack:
		if s.Phase() == engine.PhaseRunning {
			s.Input.RequestAttack()
			handled = true
		}

	case input.IntentPause:
		handled = s.TogglePause()

	case input.IntentConfirm:
		switch s.Phase() {
		case engine.PhaseIdle:
			handled = s.Begin()
		case engine.PhaseBriefing:
			handled = s.AdvanceBriefing()
		case engine.PhaseWon:
			handled = s.NextScene()
		}

	case input.IntentExit:
		// A second exit key dismisses the prompt
		if s.Phase() == engine.PhaseConfirmExit {
			handled = s.CancelExit()
		} else {
			handled = s.RequestExit(ctx)
		}

	case input.IntentYes:
		handled = s.ConfirmExit(ctx)

	case input.IntentNo:
		handled = s.CancelExit()

	case input.IntentDifficulty:
		if in.Level >= 0 && in.Level < len(core.Difficulties) {
			handled = s.SelectDifficulty(core.Difficulties[in.Level])
		}

	case input.IntentWatchAd:
		handled = s.WatchAd(ctx)

	case input.IntentClaim:
		handled = s.ClaimExit(ctx)
	}

	if !handled {
		h.log.Debug().Uint8("intent", uint8(in.Type)).Stringer("phase", s.Phase()).Msg("intent ignored")
	}
}
