package audio

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// AudioService wraps SoundManager as a service.Service
// Handles graceful degradation when no audio device is available
type AudioService struct {
	cfg      *AudioConfig
	manager  *SoundManager
	disabled atomic.Bool
	log      zerolog.Logger
}

// NewService creates a new audio service
func NewService(log zerolog.Logger) *AudioService {
	return &AudioService{
		log: log.With().Str("component", "audio").Logger(),
	}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Init implements Service
// args[0]: *AudioConfig, defaults when absent
func (s *AudioService) Init(args ...any) error {
	s.cfg = DefaultAudioConfig()
	if len(args) > 0 {
		if cfg, ok := args[0].(*AudioConfig); ok && cfg != nil {
			s.cfg = cfg
		}
	}
	s.manager = NewSoundManager(s.cfg)
	if !s.cfg.Enabled {
		s.disabled.Store(true)
	}
	return nil
}

// Start implements Service
// Opens the speaker; sets disabled on failure (no error returned)
func (s *AudioService) Start() error {
	if s.disabled.Load() || s.manager == nil {
		return nil
	}
	if err := s.manager.Initialize(); err != nil {
		s.log.Warn().Err(err).Msg("audio disabled")
		s.disabled.Store(true)
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Player returns the sound manager, nil if audio is disabled
func (s *AudioService) Player() *SoundManager {
	if s.disabled.Load() {
		return nil
	}
	return s.manager
}
