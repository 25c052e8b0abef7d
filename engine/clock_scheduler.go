package engine

import (
	"sync"
	"time"
)

// ClockScheduler owns the two periodic tasks of an attempt: the frame tick
// and the one-second countdown tick
// Both tickers are acquired together and released together
type ClockScheduler struct {
	mu sync.Mutex

	frameInterval     time.Duration
	countdownInterval time.Duration

	frame     *time.Ticker
	countdown *time.Ticker

	frameCount  uint64
	secondCount uint64
}

// NewClockScheduler creates a scheduler with the given intervals; nothing runs until Acquire
func NewClockScheduler(frameInterval, countdownInterval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		frameInterval:     frameInterval,
		countdownInterval: countdownInterval,
	}
}

// Acquire starts both tickers; calling it again returns the running pair
func (cs *ClockScheduler) Acquire() (frame, countdown <-chan time.Time) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.frame == nil {
		cs.frame = time.NewTicker(cs.frameInterval)
		cs.countdown = time.NewTicker(cs.countdownInterval)
	}
	return cs.frame.C, cs.countdown.C
}

// Release stops both tickers; idempotent
func (cs *ClockScheduler) Release() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.frame != nil {
		cs.frame.Stop()
		cs.frame = nil
	}
	if cs.countdown != nil {
		cs.countdown.Stop()
		cs.countdown = nil
	}
}

// ResetCountdown restarts the countdown period so the next tick lands a full
// interval from now; a tick already pending is dropped
func (cs *ClockScheduler) ResetCountdown() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.countdown == nil {
		return
	}
	cs.countdown.Reset(cs.countdownInterval)
	select {
	case <-cs.countdown.C:
	default:
	}
}

// Active reports whether the tickers are held
func (cs *ClockScheduler) Active() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.frame != nil && cs.countdown != nil
}

// Frame dispatches one frame tick to the session
// Returns true when the simulator ran
func (cs *ClockScheduler) Frame(s *Session) bool {
	cs.mu.Lock()
	cs.frameCount++
	cs.mu.Unlock()
	return s.Frame()
}

// Second dispatches one countdown tick to the session
// Returns true when the countdown ran
func (cs *ClockScheduler) Second(s *Session) bool {
	cs.mu.Lock()
	cs.secondCount++
	cs.mu.Unlock()
	return s.Second()
}

// Counts returns how many frame and countdown ticks were dispatched
func (cs *ClockScheduler) Counts() (frames, seconds uint64) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.frameCount, cs.secondCount
}
