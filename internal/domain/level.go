package domain

import (
	"fmt"
	"strings"
)

// Level is the difficulty classification of a Program.
type Level string

// Possible program levels
const (
	LevelBasic        Level = "BASIC"
	LevelIntermediate Level = "INTERMEDIATE"
	LevelHard         Level = "HARD"
)

// Levels returns every known level, easiest first.
func Levels() []Level {
	return []Level{LevelBasic, LevelIntermediate, LevelHard}
}

// ParseLevel converts a case-insensitive level name into a Level.
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !level.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return level, nil
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelBasic, LevelIntermediate, LevelHard:
		return true
	default:
		return false
	}
}

func (l Level) String() string {
	return string(l)
}
