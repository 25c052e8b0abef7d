package engine

import (
	"sync"
	"time"
)

// PausableClock provides pausable game time with pause duration tracking
// Dwell timers, attack windows and spawn pacing all read game time, so they freeze while paused
type PausableClock struct {
	mu sync.RWMutex

	// Base time tracking
	realStartTime time.Time // When clock was created (real time)
	gameStartTime time.Time // Game time epoch (adjusted for pauses)

	// Pause state
	isPaused        bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration

	realTimeProvider TimeProvider
}

// NewPausableClock creates a running clock over the monotonic system time
func NewPausableClock() *PausableClock {
	return NewPausableClockWith(NewMonotonicTimeProvider())
}

// NewPausableClockWith creates a running clock over the given real time source
func NewPausableClockWith(tp TimeProvider) *PausableClock {
	now := tp.Now()
	return &PausableClock{
		realStartTime:    now,
		gameStartTime:    now,
		realTimeProvider: tp,
	}
}

// Now returns current game time (affected by pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused {
		// During pause: return frozen time at pause point
		return pc.gameStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}

	// Game elapsed = real elapsed - total paused time
	realElapsed := pc.realTimeProvider.Now().Sub(pc.realStartTime)
	return pc.gameStartTime.Add(realElapsed - pc.totalPausedTime)
}

// RealTime returns actual wall clock time (unaffected by pause)
func (pc *PausableClock) RealTime() time.Time {
	return pc.realTimeProvider.Now()
}

// Pause stops game time advancement; no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused {
		return
	}
	pc.isPaused = true
	pc.pauseStartTime = pc.realTimeProvider.Now()
}

// Resume continues game time advancement; no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.isPaused {
		return
	}
	pc.isPaused = false
	pc.totalPausedTime += pc.realTimeProvider.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.isPaused
}

// GetTotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) GetTotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused {
		total += pc.realTimeProvider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
