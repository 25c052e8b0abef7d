package service

import (
	"context"

	"github.com/lixenwraith/eco-fighter/core"
)

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources such as the audio output
//
// Lifecycle:
//  1. Construction (via factory)
//  2. Init(args...) - implicit configuration (e.g. from parsed flags/env)
//  3. Start() - launch background goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Init configures the service from optional args
	Init(args ...any) error

	// Start begins service operation (launches goroutines if any)
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// Round is the metadata the game reads once to pick its theme
type Round struct {
	ID           string    `yaml:"id"`
	Mode         core.Mode `yaml:"mode"`
	LocationName string    `yaml:"location"`
	Title        string    `yaml:"title"`
}

// RoundProvider fetches round metadata by id
type RoundProvider interface {
	GetRound(ctx context.Context, roundID string) (Round, error)
}

// XPSink persists XP earned in a session to the player's profile
type XPSink interface {
	CreditXP(ctx context.Context, accountID string, amount int) error
}

// Navigator hands control back to the round screen on exit
type Navigator interface {
	GoToRound(roundID string)
}

// AdPlayer shows a rewarded ad and returns once it has been watched
type AdPlayer interface {
	ShowRewardedAd(ctx context.Context) error
}
