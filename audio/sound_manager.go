package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/eco-fighter/constants"
)

// speakerLock guards the mixer while the speaker goroutine drains it
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// SoundManager plays one-shot cues through a single mixer on the speaker
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	output      sync.Locker // held while touching the mixer; nil until initialized
	initialized bool

	muted      atomic.Bool
	played     atomic.Int64
	lastPlayed [soundTypeCount]time.Time
	now        func() time.Time
}

// NewSoundManager creates a new sound manager; nil config uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the speaker and starts draining the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	speaker.Play(sm.mixer)
	sm.attach(speakerLock{})
	return nil
}

// attach marks the manager ready to mix under lock
func (sm *SoundManager) attach(lock sync.Locker) {
	sm.output = lock
	sm.initialized = true
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.output.Lock()
	sm.mixer.Clear()
	sm.output.Unlock()

	if _, ok := sm.output.(speakerLock); ok {
		speaker.Close()
	}
	sm.initialized = false
}

// Play queues a cue; returns false when muted, disabled, rate limited or not initialized
func (sm *SoundManager) Play(st SoundType) bool {
	if st < 0 || st >= soundTypeCount || sm.muted.Load() || !sm.cfg.Enabled {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	now := sm.now()
	if last := sm.lastPlayed[st]; !last.IsZero() && now.Sub(last) < constants.MinSoundGap {
		return false
	}
	sm.lastPlayed[st] = now

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return false
	}

	sm.output.Lock()
	sm.mixer.Add(streamer)
	sm.output.Unlock()
	sm.played.Add(1)
	return true
}

// ToggleMute flips the mute state and silences anything playing; returns the new state
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.muted.Store(muted)

	if muted {
		sm.mu.Lock()
		if sm.initialized {
			sm.output.Lock()
			sm.mixer.Clear()
			sm.output.Unlock()
		}
		sm.mu.Unlock()
	}
	return muted
}

// SetMuted sets the mute state directly
func (sm *SoundManager) SetMuted(muted bool) {
	if muted != sm.muted.Load() {
		sm.ToggleMute()
	}
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Played returns the number of cues queued since creation
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

// Active returns the number of cues still in the mixer
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return 0
	}
	sm.output.Lock()
	defer sm.output.Unlock()
	return sm.mixer.Len()
}
