package handler

import "github.com/philipp01105/ctxlog/core"

// Handler defines the interface for record sinks
type Handler interface {
	// Handle delivers a fully assembled record. Implementations must
	// be safe for concurrent calls and must not mutate the record;
	// retaining it past the call is allowed.
	Handle(r *core.Record) error

	// Close flushes buffered output and releases resources
	Close() error
}

// Func adapts a plain function to the Handler interface with a no-op
// Close. Useful for tests and ad-hoc sinks.
type Func func(r *core.Record) error

// Handle implements Handler.
func (f Func) Handle(r *core.Record) error { return f(r) }

// Close implements Handler.
func (f Func) Close() error { return nil }
