package logger

import (
	"github.com/philipp01105/ctxlog/core"
	"github.com/philipp01105/ctxlog/formatter"
	"github.com/philipp01105/ctxlog/handler"
	"github.com/philipp01105/ctxlog/scope"
)

// Builder provides a fluent API for building Logger instances
type Builder struct {
	minLevel     core.Level
	pretty       bool
	includeStack bool
	enrich       bool
	defaultMeta  core.Metadata
	handler      handler.Handler
	provider     scope.Provider
}

// NewBuilder creates a builder with the default configuration:
// info level, compact output, stack traces on, context enrichment on.
func NewBuilder() *Builder {
	return &Builder{
		minLevel:     core.InfoLevel,
		includeStack: true,
		enrich:       true,
	}
}

// WithMinLevel sets the minimum level a record needs to be emitted
func (b *Builder) WithMinLevel(level core.Level) *Builder {
	b.minLevel = level
	return b
}

// WithPrettyPrint toggles indented JSON on the default console
// handler. It has no effect when a custom handler is set.
func (b *Builder) WithPrettyPrint(pretty bool) *Builder {
	b.pretty = pretty
	return b
}

// WithStackTraces toggles stack capture for serialized error values
func (b *Builder) WithStackTraces(include bool) *Builder {
	b.includeStack = include
	return b
}

// WithDefaultMetadata merges meta into the metadata attached to every
// record. The map is copied; later changes by the caller are not seen.
func (b *Builder) WithDefaultMetadata(meta core.Metadata) *Builder {
	b.defaultMeta = b.defaultMeta.Merge(meta)
	return b
}

// WithHandler replaces the default console handler entirely
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithProvider sets the scope provider used to read trace, request
// and user identifiers from a context.
func (b *Builder) WithProvider(p scope.Provider) *Builder {
	b.provider = p
	return b
}

// WithEnrichment toggles reading the ambient scope from the context.
// When disabled the provider is never consulted.
func (b *Builder) WithEnrichment(enabled bool) *Builder {
	b.enrich = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	h := b.handler
	if h == nil {
		var f formatter.Formatter
		if b.pretty {
			f = formatter.NewPrettyJSONFormatter(formatter.Config{})
		} else {
			f = formatter.NewJSONFormatter(formatter.Config{})
		}
		h = handler.NewConsoleHandler(handler.ConsoleConfig{Formatter: f})
	}

	p := b.provider
	if p == nil {
		p = scope.ContextProvider{}
	}

	return &Logger{
		cfg: &config{
			minLevel:     b.minLevel,
			includeStack: b.includeStack,
			enrich:       b.enrich,
			handler:      h,
			provider:     p,
		},
		meta: b.defaultMeta.Clone(),
	}
}
