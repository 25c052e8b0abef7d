package audio

import (
	"github.com/lixenwraith/eco-fighter/constants"
)

// AudioConfig holds output and volume settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   constants.AudioSampleRate,
		MasterVolume: 0.5,
		EffectVolumes: [soundTypeCount]float64{
			SoundCollect:   0.6,
			SoundAttack:    0.35,
			SoundEliminate: 0.7,
			SoundMischief:  0.4,
			SoundWin:       0.6,
			SoundLose:      0.5,
		},
	}
}

// SetMasterVolume clamps v into [0, 1]
func (c *AudioConfig) SetMasterVolume(v float64) {
	c.MasterVolume = min(max(v, 0), 1)
}
