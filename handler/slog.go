package handler

import (
	"context"
	"log/slog"
	"maps"
	"time"

	"github.com/philipp01105/ctxlog/core"
	"github.com/philipp01105/ctxlog/scope"
)

// SlogConfig configures a SlogHandler.
type SlogConfig struct {
	// MinLevel is the minimum slog level the adapter reports enabled.
	// The zero value is slog.LevelInfo.
	MinLevel slog.Level

	// Provider extracts the ambient scope from the context slog hands
	// to Handle. Defaults to scope.ContextProvider.
	Provider scope.Provider

	// IncludeStack captures a stack when an "error" attr carries an
	// error value without one.
	IncludeStack bool
}

// SlogHandler adapts a Handler to the slog.Handler interface, so the
// standard library logger can emit through any sink in this package.
// Group names are flattened into dotted attribute keys, and an "error"
// attr is lifted into the record's error detail.
type SlogHandler struct {
	handler      Handler
	provider     scope.Provider
	minLevel     slog.Level
	includeStack bool
	attrs        core.Metadata
	group        string
}

// NewSlogHandler creates a slog.Handler adapter wrapping h.
func NewSlogHandler(h Handler, config SlogConfig) *SlogHandler {
	if config.Provider == nil {
		config.Provider = scope.ContextProvider{}
	}
	return &SlogHandler{
		handler:      h,
		provider:     config.Provider,
		minLevel:     config.MinLevel,
		includeStack: config.IncludeStack,
	}
}

// Enabled reports whether the adapter handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= s.minLevel
}

// Handle converts the slog record and passes it to the wrapped handler.
func (s *SlogHandler) Handle(ctx context.Context, record slog.Record) error {
	var meta core.Metadata
	if len(s.attrs) > 0 || record.NumAttrs() > 0 {
		meta = make(core.Metadata, len(s.attrs)+record.NumAttrs())
		maps.Copy(meta, s.attrs)
		record.Attrs(func(a slog.Attr) bool {
			collectAttr(meta, s.group, a)
			return true
		})
	}

	t := record.Time
	if t.IsZero() {
		t = time.Now()
	}

	r := core.NewRecord(t, slogToLevel(record.Level), record.Message, meta, s.provider.Scope(ctx), s.includeStack)
	return s.handler.Handle(r)
}

// WithAttrs returns a copy of the adapter with additional attributes,
// qualified by the open group.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	next := s.clone()
	if next.attrs == nil {
		next.attrs = make(core.Metadata, len(attrs))
	}
	for _, a := range attrs {
		collectAttr(next.attrs, s.group, a)
	}
	return next
}

// WithGroup returns a copy of the adapter that prefixes subsequent
// attribute keys with name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	next := s.clone()
	next.group = joinKey(s.group, name)
	return next
}

func (s *SlogHandler) clone() *SlogHandler {
	next := *s
	next.attrs = s.attrs.Clone()
	return &next
}

// collectAttr flattens a into meta under prefix. Groups become dotted
// keys; a group with an empty key is inlined.
func collectAttr(meta core.Metadata, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = joinKey(prefix, a.Key)
		}
		for _, ga := range a.Value.Group() {
			collectAttr(meta, groupPrefix, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	meta[joinKey(prefix, a.Key)] = a.Value.Any()
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// slogToLevel converts a slog.Level to a core.Level.
func slogToLevel(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
