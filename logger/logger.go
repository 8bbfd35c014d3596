package logger

import (
	"context"
	"maps"
	"time"

	"github.com/philipp01105/ctxlog/core"
	"github.com/philipp01105/ctxlog/handler"
	"github.com/philipp01105/ctxlog/scope"
)

// config is the shared configuration behind a Logger and all loggers
// derived from it. It is set once by the Builder and never modified.
type config struct {
	minLevel     core.Level
	includeStack bool
	enrich       bool
	handler      handler.Handler
	provider     scope.Provider
}

// Logger emits leveled records enriched with the ambient scope of a
// context. A Logger is immutable and safe for concurrent use; Child
// returns a derived logger sharing this configuration by reference.
type Logger struct {
	cfg  *config
	meta core.Metadata
}

// Enabled reports whether a record at level would reach the handler.
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.cfg.minLevel && l.cfg.handler != nil
}

// Log emits a record at the given level. Below the configured minimum
// the call is a single comparison: no context read, no metadata merge,
// no handler call. Handler errors are discarded; logging is best
// effort and never disturbs the caller.
func (l *Logger) Log(ctx context.Context, level core.Level, msg string, meta ...core.Metadata) {
	if level < l.cfg.minLevel || l.cfg.handler == nil {
		return
	}
	l.emit(ctx, level, msg, l.merge(meta))
}

// Debug logs a debug message
func (l *Logger) Debug(ctx context.Context, msg string, meta ...core.Metadata) {
	l.Log(ctx, core.DebugLevel, msg, meta...)
}

// Info logs an info message
func (l *Logger) Info(ctx context.Context, msg string, meta ...core.Metadata) {
	l.Log(ctx, core.InfoLevel, msg, meta...)
}

// Warn logs a warning message
func (l *Logger) Warn(ctx context.Context, msg string, meta ...core.Metadata) {
	l.Log(ctx, core.WarnLevel, msg, meta...)
}

// Error logs an error-level message. err may be an error, a string,
// or any other value; it is serialized into the record's error detail
// under the reserved "error" key, overriding any such key carried in
// metadata. A nil err produces a plain error-level record.
func (l *Logger) Error(ctx context.Context, msg string, err any, meta ...core.Metadata) {
	if core.ErrorLevel < l.cfg.minLevel || l.cfg.handler == nil {
		return
	}
	merged := l.merge(meta)
	if err != nil {
		if merged == nil {
			merged = make(core.Metadata, 1)
		}
		merged[core.ErrorKey] = err
	}
	l.emit(ctx, core.ErrorLevel, msg, merged)
}

// Child returns a logger that carries the parent's metadata merged
// with meta, keys in meta winning. Parent and child stay fully
// independent; only the configuration is shared.
func (l *Logger) Child(meta core.Metadata) *Logger {
	return &Logger{
		cfg:  l.cfg,
		meta: l.meta.Merge(meta),
	}
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.cfg.handler != nil {
		return l.cfg.handler.Close()
	}
	return nil
}

// merge layers the per-call metadata over the logger's own. The
// result is always a fresh map (or nil), never an alias of either
// input, so the record may take ownership of it.
func (l *Logger) merge(meta []core.Metadata) core.Metadata {
	merged := l.meta.Clone()
	for _, m := range meta {
		if len(m) == 0 {
			continue
		}
		if merged == nil {
			merged = make(core.Metadata, len(m))
		}
		maps.Copy(merged, m)
	}
	return merged
}

func (l *Logger) emit(ctx context.Context, level core.Level, msg string, meta core.Metadata) {
	var sc core.Scope
	if l.cfg.enrich {
		sc = l.extractScope(ctx)
	}
	r := core.NewRecord(time.Now(), level, msg, meta, sc, l.cfg.includeStack)
	_ = l.cfg.handler.Handle(r)
}

// extractScope asks the provider for the ambient scope. A provider
// panic leaves the record without scope fields rather than crashing
// the caller.
func (l *Logger) extractScope(ctx context.Context) (sc core.Scope) {
	defer func() {
		if recover() != nil {
			sc = core.Scope{}
		}
	}()
	return l.cfg.provider.Scope(ctx)
}
