package components

import "time"

// NoObject marks an empty standing tracker
const NoObject = -1

// StandingTracker tracks the single target the player is dwelling on
// At most one object is tracked; switching objects restarts the timer
type StandingTracker struct {
	ObjectID int
	Since    time.Time
}

// NewStandingTracker returns an empty tracker
func NewStandingTracker() StandingTracker {
	return StandingTracker{ObjectID: NoObject}
}

// Active reports whether an object is tracked
func (s *StandingTracker) Active() bool {
	return s.ObjectID != NoObject
}

// Tracking reports whether id is the tracked object
func (s *StandingTracker) Tracking(id int) bool {
	return s.ObjectID != NoObject && s.ObjectID == id
}

// Track starts dwelling on id from now
func (s *StandingTracker) Track(id int, now time.Time) {
	s.ObjectID = id
	s.Since = now
}

// Clear drops the tracked object
func (s *StandingTracker) Clear() {
	s.ObjectID = NoObject
	s.Since = time.Time{}
}

// Elapsed returns dwell time on the tracked object, zero if none
func (s *StandingTracker) Elapsed(now time.Time) time.Duration {
	if !s.Active() {
		return 0
	}
	return now.Sub(s.Since)
}
