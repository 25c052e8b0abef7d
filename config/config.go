// Package config resolves runtime settings from defaults, a .env file,
// ECO_FIGHTER_* environment variables and command-line flags, in rising precedence
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/eco-fighter/core"
)

// EnvPrefix namespaces every environment key
const EnvPrefix = "ECO_FIGHTER_"

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// accountNamespace seeds the stable per-user account ID
var accountNamespace = uuid.MustParse("6f1c4a52-8e0b-4d3e-9b7a-2c5d8e9f0a13")

// Config holds the resolved runtime settings
type Config struct {
	RoundID      string
	AccountID    string
	Difficulty   core.Difficulty
	RoundsFile   string
	ProfilesFile string
	AdDuration   time.Duration
	AudioEnabled bool
	MasterVolume float64 // 0.0-1.0
	Debug        bool
	Seed         uint64 // 0 picks a time-based seed
	EnvFile      string
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		RoundID:      "demo",
		Difficulty:   core.DifficultyEasy,
		RoundsFile:   "rounds.yaml",
		ProfilesFile: "profiles.yaml",
		AdDuration:   3 * time.Second,
		AudioEnabled: true,
		MasterVolume: 0.5,
		EnvFile:      ".env",
	}
}

// Load resolves settings for args (without the program name)
// A missing .env file is not an error
func Load(args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("eco-fighter", flag.ContinueOnError)
	var (
		difficulty = fs.String("difficulty", cfg.Difficulty.String(), "starting difficulty: easy, medium, hard")
		volume     = fs.Int("volume", int(cfg.MasterVolume*100), "master volume 0-100")
		noAudio    = fs.Bool("mute", false, "start with audio disabled")
	)
	fs.StringVar(&cfg.RoundID, "round", cfg.RoundID, "round id to play")
	fs.StringVar(&cfg.AccountID, "account", cfg.AccountID, "account id credited with XP (default: derived from the OS user)")
	fs.StringVar(&cfg.RoundsFile, "rounds", cfg.RoundsFile, "round catalog YAML file")
	fs.StringVar(&cfg.ProfilesFile, "profiles", cfg.ProfilesFile, "profile XP store YAML file")
	fs.DurationVar(&cfg.AdDuration, "ad-duration", cfg.AdDuration, "length of the rewarded ad")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write debug logs to logs/eco-fighter.log")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "world generation seed, 0 for random")
	fs.StringVar(&cfg.EnvFile, "env", cfg.EnvFile, "dotenv file with ECO_FIGHTER_* settings")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Env fills only what flags left alone
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", cfg.EnvFile, err)
		}
	}
	if err := cfg.applyEnv(set); err != nil {
		return cfg, err
	}

	if set["difficulty"] {
		d, err := core.ParseDifficulty(*difficulty)
		if err != nil {
			return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		cfg.Difficulty = d
	}
	if set["volume"] {
		cfg.MasterVolume = float64(*volume) / 100
	}
	if set["mute"] {
		cfg.AudioEnabled = !*noAudio
	}

	if cfg.AccountID == "" {
		cfg.AccountID = LocalAccountID()
	}
	return cfg, cfg.Validate()
}

// applyEnv overlays ECO_FIGHTER_* values for keys not set by flag
func (c *Config) applyEnv(set map[string]bool) error {
	str := func(flagName, key string, dst *string) {
		if v, ok := lookup(key); ok && !set[flagName] {
			*dst = v
		}
	}
	str("round", "ROUND", &c.RoundID)
	str("account", "ACCOUNT", &c.AccountID)
	str("rounds", "ROUNDS_FILE", &c.RoundsFile)
	str("profiles", "PROFILES_FILE", &c.ProfilesFile)

	if v, ok := lookup("DIFFICULTY"); ok && !set["difficulty"] {
		d, err := core.ParseDifficulty(v)
		if err != nil {
			return fmt.Errorf("%w: %sDIFFICULTY: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.Difficulty = d
	}
	if v, ok := lookup("AD_DURATION"); ok && !set["ad-duration"] {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %sAD_DURATION: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.AdDuration = d
	}
	if v, ok := lookup("AUDIO_ENABLED"); ok && !set["mute"] {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sAUDIO_ENABLED: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.AudioEnabled = b
	}
	// Master volume 0-100 converted to 0.0-1.0
	if v, ok := lookup("MASTER_VOLUME"); ok && !set["volume"] {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sMASTER_VOLUME: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.MasterVolume = float64(n) / 100
	}
	if v, ok := lookup("DEBUG"); ok && !set["debug"] {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sDEBUG: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.Debug = b
	}
	if v, ok := lookup("SEED"); ok && !set["seed"] {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.Seed = n
	}
	return nil
}

// Validate checks ranges
func (c Config) Validate() error {
	if strings.TrimSpace(c.RoundID) == "" {
		return fmt.Errorf("%w: empty round id", ErrInvalidConfig)
	}
	if !c.Difficulty.Valid() {
		return fmt.Errorf("%w: difficulty %d", ErrInvalidConfig, c.Difficulty)
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("%w: volume %.2f outside 0-100", ErrInvalidConfig, c.MasterVolume*100)
	}
	if c.AdDuration < 0 {
		return fmt.Errorf("%w: negative ad duration", ErrInvalidConfig)
	}
	return nil
}

// LocalAccountID derives a stable UUID from the OS user so XP accumulates across runs
func LocalAccountID() string {
	name := os.Getenv("USER")
	if name == "" {
		name = os.Getenv("USERNAME")
	}
	if name == "" {
		name = "player"
	}
	return uuid.NewSHA1(accountNamespace, []byte(name)).String()
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
