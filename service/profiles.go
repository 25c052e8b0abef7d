package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile is the persisted XP record of one account
type Profile struct {
	XP        int       `yaml:"xp"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// YAMLProfiles is an XPSink persisting account XP in a YAML file
// Writes go to a temp file and are renamed into place
type YAMLProfiles struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewYAMLProfiles creates a store at path
func NewYAMLProfiles(path string) *YAMLProfiles {
	return &YAMLProfiles{path: path, now: time.Now}
}

// CreditXP implements XPSink
func (p *YAMLProfiles) CreditXP(ctx context.Context, accountID string, amount int) error {
	if accountID == "" {
		return ErrNoAccount
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	profiles, err := p.read()
	if err != nil {
		return err
	}
	prof := profiles[accountID]
	prof.XP += amount
	prof.UpdatedAt = p.now().UTC()
	profiles[accountID] = prof

	return p.write(profiles)
}

// Get returns the stored profile for accountID
func (p *YAMLProfiles) Get(accountID string) (Profile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	profiles, err := p.read()
	if err != nil {
		return Profile{}, err
	}
	return profiles[accountID], nil
}

func (p *YAMLProfiles) read() (map[string]Profile, error) {
	profiles := make(map[string]Profile)
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return profiles, nil
		}
		return nil, fmt.Errorf("read profiles %s: %w", p.path, err)
	}
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parse profiles %s: %w", p.path, err)
	}
	if profiles == nil {
		profiles = make(map[string]Profile)
	}
	return profiles, nil
}

func (p *YAMLProfiles) write(profiles map[string]Profile) error {
	data, err := yaml.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}
	if dir := filepath.Dir(p.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create profile dir: %w", err)
		}
	}
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write profiles: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("replace profiles: %w", err)
	}
	return nil
}
