package core

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log record
type Level int8

const (
	// DebugLevel for verbose diagnostic output
	DebugLevel Level = iota
	// InfoLevel for routine operational messages (default minimum)
	InfoLevel
	// WarnLevel for conditions that deserve attention
	WarnLevel
	// ErrorLevel for failures of the current operation
	ErrorLevel
)

// String returns the wire name of the level: "debug", "info", "warn"
// or "error".
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int8(l))
	}
}

// MarshalJSON encodes the level as its quoted wire name.
func (l Level) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// ParseLevel converts a wire name into a Level. Matching is
// case-insensitive and ignores surrounding whitespace; "warning" is
// accepted as an alias for "warn". Unknown names return InfoLevel and
// an error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}
