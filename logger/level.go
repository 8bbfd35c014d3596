package logger

import "github.com/philipp01105/ctxlog/core"

// Re-exported types so most callers only import this package.
type (
	Level    = core.Level
	Metadata = core.Metadata
)

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// ParseLevel converts a string to a Level, falling back to InfoLevel
// for unknown names
func ParseLevel(s string) Level {
	level, _ := core.ParseLevel(s)
	return level
}
