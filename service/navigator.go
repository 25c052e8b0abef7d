package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// LogNavigator records the round hand-off; the terminal app quits after exit
type LogNavigator struct {
	log zerolog.Logger

	mu     sync.Mutex
	target string
}

// NewLogNavigator creates a navigator logging through log
func NewLogNavigator(log zerolog.Logger) *LogNavigator {
	return &LogNavigator{log: log}
}

// GoToRound implements Navigator
func (n *LogNavigator) GoToRound(roundID string) {
	n.mu.Lock()
	n.target = roundID
	n.mu.Unlock()
	n.log.Info().Str("round", roundID).Msg("navigate to round")
}

// Target returns the last requested round, empty if none
func (n *LogNavigator) Target() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.target
}

// TimedAd stands in for the rewarded ad SDK: it resolves after a fixed duration
type TimedAd struct {
	Duration time.Duration
}

// ShowRewardedAd implements AdPlayer; cancelling ctx aborts the ad
func (a TimedAd) ShowRewardedAd(ctx context.Context) error {
	if a.Duration <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(a.Duration)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
