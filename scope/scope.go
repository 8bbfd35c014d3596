package scope

import (
	"context"

	"github.com/philipp01105/ctxlog/core"
)

// scopeKey is the private context key; the type guarantees no
// collision with keys from other packages.
type scopeKey struct{}

// NewContext returns a context carrying sc. It replaces any scope
// already present; use the WithX helpers to layer single fields.
func NewContext(ctx context.Context, sc core.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// FromContext returns the scope stored in ctx, or the zero scope when
// ctx is nil or carries none.
func FromContext(ctx context.Context) core.Scope {
	if ctx == nil {
		return core.Scope{}
	}
	sc, _ := ctx.Value(scopeKey{}).(core.Scope)
	return sc
}

// WithTraceID returns a context whose scope has the trace ID set,
// preserving the other fields.
func WithTraceID(ctx context.Context, id string) context.Context {
	sc := FromContext(ctx)
	sc.TraceID = id
	return NewContext(ctx, sc)
}

// WithRequestID returns a context whose scope has the request ID set,
// preserving the other fields.
func WithRequestID(ctx context.Context, id string) context.Context {
	sc := FromContext(ctx)
	sc.RequestID = id
	return NewContext(ctx, sc)
}

// WithUserID returns a context whose scope has the user ID set,
// preserving the other fields.
func WithUserID(ctx context.Context, id string) context.Context {
	sc := FromContext(ctx)
	sc.UserID = id
	return NewContext(ctx, sc)
}
