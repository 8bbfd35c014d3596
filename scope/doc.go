// Package scope carries the ambient identity of an operation, the
// trace, request and user identifiers, through context.Context, and
// defines the Provider interface loggers use to read it back out.
//
// Providers are read-only collaborators with a quiet failure mode: a
// context holding nothing yields the zero scope, never an error. The
// bundled providers also tolerate nil contexts. Extraction never
// mutates the context; writing happens only through the explicit
// NewContext/WithTraceID/WithRequestID/WithUserID helpers and the
// request-ID middleware.
package scope
