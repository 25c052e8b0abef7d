package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/eco-fighter/core"
)

// noEnv points the loader at a dotenv path that does not exist
func noEnv(t *testing.T) string {
	return "-env=" + filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("USER", "tester")
	cfg, err := Load([]string{noEnv(t)})
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.RoundID)
	assert.Equal(t, core.DifficultyEasy, cfg.Difficulty)
	assert.Equal(t, 3*time.Second, cfg.AdDuration)
	assert.True(t, cfg.AudioEnabled)
	assert.InDelta(t, 0.5, cfg.MasterVolume, 1e-9)
	assert.False(t, cfg.Debug)

	_, err = uuid.Parse(cfg.AccountID)
	assert.NoError(t, err, "derived account id is a uuid")
	assert.Equal(t, LocalAccountID(), cfg.AccountID)
}

func TestLocalAccountIDStablePerUser(t *testing.T) {
	t.Setenv("USER", "alpha")
	a1 := LocalAccountID()
	assert.Equal(t, a1, LocalAccountID())

	t.Setenv("USER", "beta")
	assert.NotEqual(t, a1, LocalAccountID())
}

func TestFlags(t *testing.T) {
	cfg, err := Load([]string{
		noEnv(t),
		"-round", "harbor-2",
		"-account", "acct-1",
		"-difficulty", "hard",
		"-volume", "80",
		"-mute",
		"-debug",
		"-seed", "42",
		"-ad-duration", "1s",
	})
	require.NoError(t, err)

	assert.Equal(t, "harbor-2", cfg.RoundID)
	assert.Equal(t, "acct-1", cfg.AccountID)
	assert.Equal(t, core.DifficultyHard, cfg.Difficulty)
	assert.InDelta(t, 0.8, cfg.MasterVolume, 1e-9)
	assert.False(t, cfg.AudioEnabled)
	assert.True(t, cfg.Debug)
	assert.EqualValues(t, 42, cfg.Seed)
	assert.Equal(t, time.Second, cfg.AdDuration)
}

func TestEnvOverlayAndFlagPrecedence(t *testing.T) {
	t.Setenv(EnvPrefix+"ROUND", "env-round")
	t.Setenv(EnvPrefix+"DIFFICULTY", "medium")
	t.Setenv(EnvPrefix+"MASTER_VOLUME", "20")
	t.Setenv(EnvPrefix+"AUDIO_ENABLED", "false")
	t.Setenv(EnvPrefix+"SEED", "7")

	cfg, err := Load([]string{noEnv(t), "-difficulty", "hard"})
	require.NoError(t, err)

	assert.Equal(t, "env-round", cfg.RoundID)
	assert.Equal(t, core.DifficultyHard, cfg.Difficulty, "flag beats env")
	assert.InDelta(t, 0.2, cfg.MasterVolume, 1e-9)
	assert.False(t, cfg.AudioEnabled)
	assert.EqualValues(t, 7, cfg.Seed)
}

func TestDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.env")
	require.NoError(t, os.WriteFile(path, []byte("ECO_FIGHTER_ROUND=dotenv-round\nECO_FIGHTER_PROFILES_FILE=/tmp/p.yaml\n"), 0o644))

	// Real env wins over the file
	t.Setenv(EnvPrefix+"PROFILES_FILE", "/var/real.yaml")
	// Keys the file sets stay in the process env; clear them afterwards
	t.Setenv(EnvPrefix+"ROUND", "")
	require.NoError(t, os.Unsetenv(EnvPrefix+"ROUND"))

	cfg, err := Load([]string{"-env", path})
	require.NoError(t, err)
	assert.Equal(t, "dotenv-round", cfg.RoundID)
	assert.Equal(t, "/var/real.yaml", cfg.ProfilesFile)
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "bad difficulty flag", args: []string{"-difficulty", "nightmare"}},
		{name: "volume out of range", args: []string{"-volume", "150"}},
		{name: "negative ad", args: []string{"-ad-duration", "-1s"}},
		{name: "empty round", args: []string{"-round", " "}},
		{name: "bad env bool", env: map[string]string{"DEBUG": "maybe"}},
		{name: "bad env seed", env: map[string]string{"SEED": "-3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(EnvPrefix+k, v)
			}
			_, err := Load(append([]string{noEnv(t)}, tt.args...))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestUnknownFlag(t *testing.T) {
	_, err := Load([]string{noEnv(t), "-nope"})
	assert.Error(t, err)
}
