package input

import (
	"time"

	"github.com/lixenwraith/eco-fighter/constants"
)

// Key is a movement direction key
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	keyCount
)

// opposite returns the key on the same axis pointing the other way
func (k Key) opposite() Key {
	switch k {
	case KeyUp:
		return KeyDown
	case KeyDown:
		return KeyUp
	case KeyLeft:
		return KeyRight
	default:
		return KeyLeft
	}
}

// KeySet is a snapshot of held movement keys
type KeySet uint8

// Has reports whether k is held
func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

// Empty reports no held keys
func (s KeySet) Empty() bool {
	return s == 0
}

// With returns the set including k
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Tracker accumulates held movement keys and an edge-triggered attack request
// Written by the input handler, read once per frame by the simulator; both run on the loop goroutine
type Tracker struct {
	lastPress  [keyCount]time.Time
	holdWindow time.Duration

	attackRequested bool
}

// NewTracker creates a tracker with the default terminal hold window
func NewTracker() *Tracker {
	return &Tracker{holdWindow: constants.KeyHoldWindow}
}

// SetHoldWindow overrides how long a press counts as held without repeats
func (t *Tracker) SetHoldWindow(d time.Duration) {
	t.holdWindow = d
}

// Press records a press or auto-repeat of k; the opposite key is released
func (t *Tracker) Press(k Key, now time.Time) {
	if k >= keyCount {
		return
	}
	t.lastPress[k] = now
	t.lastPress[k.opposite()] = time.Time{}
}

// Release ends k immediately, for backends that report key-up
func (t *Tracker) Release(k Key) {
	if k >= keyCount {
		return
	}
	t.lastPress[k] = time.Time{}
}

// ReleaseAll drops every held key, used on pause and attempt start
func (t *Tracker) ReleaseAll() {
	t.lastPress = [keyCount]time.Time{}
	t.attackRequested = false
}

// Held returns the keys pressed within the hold window
func (t *Tracker) Held(now time.Time) KeySet {
	var s KeySet
	for k := Key(0); k < keyCount; k++ {
		last := t.lastPress[k]
		if last.IsZero() {
			continue
		}
		if now.Sub(last) < t.holdWindow {
			s = s.With(k)
		}
	}
	return s
}

// RequestAttack raises the attack edge; acceptance is decided by the player's cooldown state
func (t *Tracker) RequestAttack() {
	t.attackRequested = true
}

// TakeAttack consumes the attack edge
func (t *Tracker) TakeAttack() bool {
	req := t.attackRequested
	t.attackRequested = false
	return req
}

// Snapshot is the per-frame view of input
type Snapshot struct {
	Held   KeySet
	Attack bool
}

// Snapshot reads held keys and consumes the attack edge in one step
func (t *Tracker) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		Held:   t.Held(now),
		Attack: t.TakeAttack(),
	}
}
