package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundCollect   SoundType = iota // Target collected or planted
	SoundAttack                     // Accepted attack swing
	SoundEliminate                  // Bad citizen stopped
	SoundMischief                   // Target reverted
	SoundWin                        // Scene won
	SoundLose                       // Countdown expired
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"collect", "attack", "eliminate", "mischief", "win", "lose"}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrAudioUnavailable = errors.New("audio output unavailable")
	ErrUnknownSound     = errors.New("unknown sound type")
)
