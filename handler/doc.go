// Package handler provides the Handler interface and its built-in
// implementations for dispatching log records to sinks.
//
// Sinks are synchronous: a Handle call returns once the record has
// been written. AsyncHandler wraps any sink with a bounded queue and
// a worker goroutine when the caller must not wait on I/O. A full
// queue applies a per-level OverflowPolicy: DropNewest (default for
// debug/info/warn), DropOldest, or Block with a timeout (default for
// errors). Queue activity is counted in Stats and readable through
// GetSnapshot.
//
// Built-in handlers:
//
//   - ConsoleHandler routes records to per-level streams, by default
//     debug/info on stdout and warn/error on stderr.
//   - FileHandler appends to a file with rotation by size or age and
//     backup cleanup.
//   - MultiHandler fans a record out to several child handlers.
//   - ZapHandler forwards records into an existing zap pipeline.
//   - SlogHandler adapts a Handler to slog.Handler, so the standard
//     library logger can emit through any sink here.
package handler
