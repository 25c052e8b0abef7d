package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/content"
	"github.com/lixenwraith/eco-fighter/core"
	"github.com/lixenwraith/eco-fighter/events"
	"github.com/lixenwraith/eco-fighter/input"
	"github.com/lixenwraith/eco-fighter/ledger"
	"github.com/lixenwraith/eco-fighter/service"
	"github.com/lixenwraith/eco-fighter/vmath"
)

// Simulator advances the world by one frame
// Implemented by systems.Simulator
type Simulator interface {
	Advance(gs *GameState, in input.Snapshot, now time.Time)
}

// Collaborators are the external services a session hands control to
type Collaborators struct {
	Navigator service.Navigator
	Ads       service.AdPlayer
}

// SessionConfig selects the round and the starting difficulty
type SessionConfig struct {
	Round      service.Round
	Difficulty core.Difficulty
	Seed       uint64
}

// Session is the mission state machine: it owns the game state, drives the
// simulator while running, and banks XP into the ledger
// All methods run on the loop goroutine; invalid transitions return false
type Session struct {
	round  service.Round
	phase  Phase
	resume Phase // phase to return to when an exit prompt is cancelled

	State    *GameState
	Ledger   *ledger.Ledger
	Clock    *PausableClock
	Input    *input.Tracker
	Briefing Briefing

	sim Simulator
	nav service.Navigator
	ads service.AdPlayer

	lastReward events.RewardPayload
	adDone     chan error
	adCancel   context.CancelFunc

	log zerolog.Logger
}

// NewSession creates a session in PhaseIdle with the game clock paused
func NewSession(cfg SessionConfig, l *ledger.Ledger, sim Simulator, collab Collaborators, clock *PausableClock, log zerolog.Logger) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if clock == nil {
		clock = NewPausableClock()
	}
	clock.Pause()

	state := NewGameState(cfg.Round.Mode, vmath.NewFastRand(seed))
	if cfg.Difficulty.Valid() {
		state.Difficulty = cfg.Difficulty
	}

	return &Session{
		round:  cfg.Round,
		phase:  PhaseIdle,
		State:  state,
		Ledger: l,
		Clock:  clock,
		Input:  input.NewTracker(),
		sim:    sim,
		nav:    collab.Navigator,
		ads:    collab.Ads,
		adDone: make(chan error, 1),
		log: log.With().
			Str("component", "session").
			Str("session", l.SessionID().String()).
			Str("round", cfg.Round.ID).
			Logger(),
	}
}

// Phase returns the current mission phase
func (s *Session) Phase() Phase { return s.phase }

// ResumePhase returns the phase an exit prompt covers
func (s *Session) ResumePhase() Phase { return s.resume }

// Round returns the round metadata the session was started with
func (s *Session) Round() service.Round { return s.round }

// Done reports whether the session reached its terminal phase
func (s *Session) Done() bool { return s.phase == PhaseExited }

// LastReward returns the reward of the most recent win
func (s *Session) LastReward() events.RewardPayload { return s.lastReward }

// AdDone delivers the ad collaborator's result; the loop passes it to CompleteAd
func (s *Session) AdDone() <-chan error { return s.adDone }

// SelectDifficulty changes difficulty on the start screen
func (s *Session) SelectDifficulty(d core.Difficulty) bool {
	if s.phase != PhaseIdle || !d.Valid() {
		return false
	}
	s.State.Difficulty = d
	return true
}

// Begin leaves the start screen for the first briefing
func (s *Session) Begin() bool {
	if s.phase != PhaseIdle {
		return false
	}
	s.startBriefing()
	return true
}

// AdvanceBriefing moves to the next line once the current one is fully revealed
// The last line starts the attempt
func (s *Session) AdvanceBriefing() bool {
	if s.phase != PhaseBriefing {
		return false
	}
	now := s.Clock.RealTime()
	if !s.Briefing.LineDone(now) {
		return false
	}
	if s.Briefing.Last() {
		s.StartAttempt()
		return true
	}
	s.Briefing.Next(now)
	return true
}

// StartAttempt generates the scene and resets everything an attempt tracks
func (s *Session) StartAttempt() bool {
	if s.phase != PhaseBriefing {
		return false
	}
	s.State.LoadScene()
	s.Input.ReleaseAll()
	s.setPhase(PhaseRunning)
	s.State.ResetAttempt(s.Clock.Now())

	s.log.Info().
		Str("mode", s.State.Mode.String()).
		Str("difficulty", s.State.Difficulty.String()).
		Int("scene", s.State.Scene).
		Int("targets", len(s.State.Targets)).
		Int("time_limit", s.State.TimeLeft).
		Msg("attempt started")
	return true
}

// Frame runs one simulator step; only while running
func (s *Session) Frame() bool {
	if s.phase != PhaseRunning {
		return false
	}
	now := s.Clock.Now()
	snap := s.Input.Snapshot(s.Clock.RealTime())
	if s.sim != nil {
		s.sim.Advance(s.State, snap, now)
	}
	if s.State.Won {
		s.win()
	}
	return true
}

// Second runs one countdown step; a signaled win takes precedence over timeout
func (s *Session) Second() bool {
	if s.phase != PhaseRunning {
		return false
	}
	if s.State.Won || s.State.AllTargetsComplete() {
		s.State.Won = true
		s.win()
		return true
	}
	if s.State.TimeLeft > 0 {
		s.State.TimeLeft--
	}
	if s.State.TimeLeft <= 0 {
		s.lose()
	}
	return true
}

// TogglePause switches between running and paused
func (s *Session) TogglePause() bool {
	switch s.phase {
	case PhaseRunning:
		s.Input.ReleaseAll()
		s.setPhase(PhasePaused)
		return true
	case PhasePaused:
		s.setPhase(PhaseRunning)
		return true
	}
	return false
}

// NextScene continues after a win
func (s *Session) NextScene() bool {
	if s.phase != PhaseWon {
		return false
	}
	s.State.Scene++
	s.startBriefing()
	return true
}

// WatchAd starts the rewarded ad after a loss; the result arrives on AdDone
func (s *Session) WatchAd(ctx context.Context) bool {
	if s.phase != PhaseLost || s.ads == nil {
		return false
	}
	s.setPhase(PhaseWatchingAd)

	adCtx, cancel := context.WithCancel(ctx)
	s.adCancel = cancel
	ads, done := s.ads, s.adDone
	core.Go(func() {
		done <- ads.ShowRewardedAd(adCtx)
	})
	return true
}

// CompleteAd credits the ad bonus and advances the scene; a failed ad returns to the loss screen
func (s *Session) CompleteAd(err error) bool {
	if s.phase != PhaseWatchingAd {
		return false
	}
	s.stopAd()
	if err != nil {
		s.log.Warn().Err(err).Msg("rewarded ad failed")
		s.setPhase(PhaseLost)
		return false
	}
	s.credit(constants.AdWatchBonusXP, "ad_watched")
	s.State.Scene++
	s.startBriefing()
	return true
}

// ClaimExit banks the ledger and leaves from the end screens
func (s *Session) ClaimExit(ctx context.Context) bool {
	if !s.phase.Ended() {
		return false
	}
	s.exit(ctx)
	return true
}

// RequestExit asks to leave; an attempt in progress or banked XP requires confirmation
func (s *Session) RequestExit(ctx context.Context) bool {
	switch s.phase {
	case PhaseExited, PhaseWatchingAd, PhaseConfirmExit:
		return false
	}
	if s.phase.InAttempt() || s.Ledger.Balance() > 0 {
		s.resume = s.phase
		s.Input.ReleaseAll()
		s.setPhase(PhaseConfirmExit)
		return true
	}
	s.exit(ctx)
	return true
}

// ConfirmExit accepts the exit prompt
func (s *Session) ConfirmExit(ctx context.Context) bool {
	if s.phase != PhaseConfirmExit {
		return false
	}
	s.exit(ctx)
	return true
}

// CancelExit dismisses the exit prompt
func (s *Session) CancelExit() bool {
	if s.phase != PhaseConfirmExit {
		return false
	}
	s.setPhase(s.resume)
	return true
}

// Quit leaves immediately from any phase, still flushing the ledger
func (s *Session) Quit(ctx context.Context) bool {
	if s.phase == PhaseExited {
		return false
	}
	s.exit(ctx)
	return true
}

// SceneReward computes the XP for a win: base = score*2 plus a 50% bonus
func SceneReward(score int) events.RewardPayload {
	base := score * constants.ScoreXPMultiplier
	bonus := int(float64(base) * constants.WinBonusFraction)
	return events.RewardPayload{
		Score: score,
		Base:  base,
		Bonus: bonus,
		Total: base + bonus,
	}
}

func (s *Session) startBriefing() {
	s.Briefing.Reset(content.Script(s.State.Mode, s.State.Scene), s.Clock.RealTime())
	s.setPhase(PhaseBriefing)
}

func (s *Session) win() {
	reward := SceneReward(s.State.Player.Score)
	s.lastReward = reward
	s.State.Emit(events.EventSceneWon, &reward, s.Clock.Now())
	s.credit(reward.Total, "scene_won")
	s.log.Info().Int("score", reward.Score).Int("xp", reward.Total).Int("scene", s.State.Scene).Msg("scene won")
	s.setPhase(PhaseWon)
}

func (s *Session) lose() {
	s.State.Emit(events.EventSceneLost, nil, s.Clock.Now())
	s.log.Info().
		Int("completed", s.State.CompletedCount()).
		Int("targets", len(s.State.Targets)).
		Int("scene", s.State.Scene).
		Msg("scene lost")
	s.setPhase(PhaseLost)
}

func (s *Session) credit(amount int, reason string) {
	if !s.Ledger.Credit(amount, reason) {
		return
	}
	s.State.Emit(events.EventXPCredited, &events.XPPayload{
		Amount:  amount,
		Balance: s.Ledger.Balance(),
		Reason:  reason,
	}, s.Clock.Now())
}

func (s *Session) stopAd() {
	if s.adCancel != nil {
		s.adCancel()
		s.adCancel = nil
	}
}

// exit flushes the ledger once and hands control back to the round screen
// Sink failures are logged and never block navigation
func (s *Session) exit(ctx context.Context) {
	s.stopAd()

	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.FlushTimeout)
	defer cancel()
	if n, err := s.Ledger.Flush(flushCtx); err != nil {
		s.log.Error().Err(err).Int("xp", n).Msg("xp credit failed, continuing exit")
	}

	if s.nav != nil {
		s.nav.GoToRound(s.round.ID)
	}
	s.setPhase(PhaseExited)
}

// setPhase records the transition and keeps game time running only while PhaseRunning
func (s *Session) setPhase(to Phase) {
	from := s.phase
	s.phase = to
	if to == PhaseRunning {
		s.Clock.Resume()
	} else {
		s.Clock.Pause()
	}
	s.State.Emit(events.EventPhaseChanged, &events.PhasePayload{From: from.String(), To: to.String()}, s.Clock.Now())
	s.log.Debug().Stringer("from", from).Stringer("to", to).Msg("phase")
}
