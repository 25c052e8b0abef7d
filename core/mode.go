package core

import (
	"fmt"
	"strings"
)

// Mode selects the round theme and which objects are targets
type Mode uint8

const (
	ModeCleanup Mode = iota // collect trash, ocean/city theme
	ModePlanting            // plant trees, desert theme
)

func (m Mode) String() string {
	switch m {
	case ModeCleanup:
		return "cleanup"
	case ModePlanting:
		return "planting"
	}
	return fmt.Sprintf("mode(%d)", m)
}

// ParseMode accepts "cleanup" or "planting" (case-insensitive)
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cleanup", "clean":
		return ModeCleanup, nil
	case "planting", "plant", "tree-planting":
		return ModePlanting, nil
	}
	return ModeCleanup, fmt.Errorf("unknown mode %q", s)
}

// UnmarshalText lets Mode decode from config and YAML scalars
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
