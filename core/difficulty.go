package core

import (
	"fmt"
	"strings"
)

// Difficulty indexes the tuning table in constants
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Difficulties lists all levels in menu order
var Difficulties = [...]Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", d)
}

// Valid reports whether d is a known level
func (d Difficulty) Valid() bool {
	return d <= DifficultyHard
}

// ParseDifficulty accepts level names or 1-3
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return DifficultyEasy, nil
	case "medium", "2":
		return DifficultyMedium, nil
	case "hard", "3":
		return DifficultyHard, nil
	}
	return DifficultyEasy, fmt.Errorf("unknown difficulty %q", s)
}
