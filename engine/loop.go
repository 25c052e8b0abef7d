package engine

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// EventHandler consumes terminal events; returning false ends the loop
type EventHandler interface {
	HandleEvent(ctx context.Context, ev tcell.Event) bool
}

// FrameRenderer draws one frame from the context
type FrameRenderer interface {
	RenderFrame(gc *GameContext)
}

// Loop is the single goroutine that owns the session
// Terminal events, frame ticks, countdown ticks and the ad result are all
// serialized through its select
type Loop struct {
	Game      *GameContext
	Scheduler *ClockScheduler
	Events    <-chan tcell.Event
	Input     EventHandler
	Renderer  FrameRenderer

	log zerolog.Logger
}

// NewLoop assembles a loop
func NewLoop(gc *GameContext, sched *ClockScheduler, evs <-chan tcell.Event, in EventHandler, r FrameRenderer, log zerolog.Logger) *Loop {
	return &Loop{
		Game:      gc,
		Scheduler: sched,
		Events:    evs,
		Input:     in,
		Renderer:  r,
		log:       log.With().Str("component", "loop").Logger(),
	}
}

// Run blocks until the session exits or ctx is cancelled
// Both tickers are released on every return path
// The countdown restarts each time the session enters PhaseRunning, so time
// spent in briefing, pause or the exit prompt never shortens a second
func (l *Loop) Run(ctx context.Context) error {
	frameC, countdownC := l.Scheduler.Acquire()
	defer l.Scheduler.Release()

	s := l.Game.Session
	running := s.Phase() == PhaseRunning
	l.render()

	for !s.Done() {
		running = l.syncCountdown(running)

		select {
		case <-ctx.Done():
			s.Quit(ctx)
			l.Game.DispatchEvents()
			return ctx.Err()

		case ev, ok := <-l.Events:
			if !ok {
				s.Quit(ctx)
				l.Game.DispatchEvents()
				return nil
			}
			if !l.Input.HandleEvent(ctx, ev) {
				s.Quit(ctx)
			}
			l.Game.DispatchEvents()

		case err := <-s.AdDone():
			s.CompleteAd(err)
			l.Game.DispatchEvents()

		case <-frameC:
			l.Game.IncrementFrameNumber()
			l.Scheduler.Frame(s)
			l.Game.DispatchEvents()
			l.render()

		case <-countdownC:
			l.Scheduler.Second(s)
			l.Game.DispatchEvents()
		}
	}

	frames, seconds := l.Scheduler.Counts()
	l.log.Info().Uint64("frames", frames).Uint64("seconds", seconds).Msg("session ended")
	return nil
}

// syncCountdown resets the countdown on entry to PhaseRunning and returns the current state
func (l *Loop) syncCountdown(wasRunning bool) bool {
	running := l.Game.Session.Phase() == PhaseRunning
	if running && !wasRunning {
		l.Scheduler.ResetCountdown()
	}
	return running
}

func (l *Loop) render() {
	if l.Renderer != nil {
		l.Renderer.RenderFrame(l.Game)
	}
}
