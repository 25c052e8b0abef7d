package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/eco-fighter/core"
)

// DefaultRound is served when no catalog file exists
var DefaultRound = Round{
	ID:           "demo",
	Mode:         core.ModeCleanup,
	LocationName: "Harbor Bay",
	Title:        "Harbor Bay Cleanup",
}

// roundCatalog is the on-disk YAML layout
type roundCatalog struct {
	Rounds []Round `yaml:"rounds"`
}

// YAMLRounds serves round metadata from a YAML catalog, loaded lazily once
type YAMLRounds struct {
	path string

	once   sync.Once
	rounds map[string]Round
	err    error
}

// NewYAMLRounds creates a provider over path; an empty path serves DefaultRound only
func NewYAMLRounds(path string) *YAMLRounds {
	return &YAMLRounds{path: path}
}

// GetRound implements RoundProvider
func (y *YAMLRounds) GetRound(ctx context.Context, roundID string) (Round, error) {
	if err := ctx.Err(); err != nil {
		return Round{}, err
	}
	y.once.Do(y.load)
	if y.err != nil {
		return Round{}, y.err
	}
	r, ok := y.rounds[roundID]
	if !ok {
		return Round{}, fmt.Errorf("%w: %q", ErrRoundNotFound, roundID)
	}
	return r, nil
}

func (y *YAMLRounds) load() {
	y.rounds = map[string]Round{DefaultRound.ID: DefaultRound}
	if y.path == "" {
		return
	}

	data, err := os.ReadFile(y.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return
		}
		y.err = fmt.Errorf("read rounds %s: %w", y.path, err)
		return
	}

	var cat roundCatalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		y.err = fmt.Errorf("parse rounds %s: %w", y.path, err)
		return
	}
	for _, r := range cat.Rounds {
		if r.ID == "" {
			continue
		}
		y.rounds[r.ID] = r
	}
}
