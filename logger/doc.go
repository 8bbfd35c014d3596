// Package logger is the public API of ctxlog. Most users only need
// to import this package.
//
// A Logger is immutable after construction: the level, handler,
// provider and default metadata are set once via the Builder and
// never modified. This makes Logger safe for concurrent use without
// any locking on the read path.
//
// Every logging call takes a context. When enrichment is on (the
// default), the configured scope provider reads the trace, request
// and user identifiers from it and stamps them onto the record. A
// context without scope simply produces a record without those
// fields; a provider failure is swallowed.
//
// The package initializes a default Logger (info level, compact JSON,
// debug/info to stdout and warn/error to stderr) in init(). The
// package-level functions Info, Error, Child, etc. delegate to this
// default instance, so simple programs can log without any setup:
//
//	logger.Info(ctx, "ready", logger.Metadata{"port": 8080})
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithMinLevel(logger.DebugLevel).
//	    WithDefaultMetadata(logger.Metadata{"service": "api"}).
//	    WithHandler(myHandler).
//	    Build()
//
// Child returns a derived logger whose metadata extends the parent's:
//
//	reqLog := log.Child(logger.Metadata{"requestId": id})
//
// Level checks happen before any allocation, so filtered-out messages
// cost only a single integer comparison.
package logger
