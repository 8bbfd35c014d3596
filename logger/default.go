package logger

import (
	"context"
	"sync"

	"github.com/philipp01105/ctxlog/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = NewBuilder().Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Debug logs a debug message using the default logger
func Debug(ctx context.Context, msg string, meta ...core.Metadata) {
	Default().Debug(ctx, msg, meta...)
}

// Info logs an info message using the default logger
func Info(ctx context.Context, msg string, meta ...core.Metadata) {
	Default().Info(ctx, msg, meta...)
}

// Warn logs a warning message using the default logger
func Warn(ctx context.Context, msg string, meta ...core.Metadata) {
	Default().Warn(ctx, msg, meta...)
}

// Error logs an error message using the default logger
func Error(ctx context.Context, msg string, err any, meta ...core.Metadata) {
	Default().Error(ctx, msg, err, meta...)
}

// Log logs a message at the given level using the default logger
func Log(ctx context.Context, level core.Level, msg string, meta ...core.Metadata) {
	Default().Log(ctx, level, msg, meta...)
}

// Child creates a derived logger from the default logger
func Child(meta core.Metadata) *Logger {
	return Default().Child(meta)
}
