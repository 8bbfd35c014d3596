package scope

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/philipp01105/ctxlog/core"
)

// SpanProvider resolves the trace ID from the active OpenTelemetry
// span and falls back to the context-stored scope for everything the
// span cannot supply. No SDK is required: without a valid span
// context only the stored scope is used.
type SpanProvider struct{}

// Scope implements Provider.
func (SpanProvider) Scope(ctx context.Context) core.Scope {
	sc := FromContext(ctx)
	if ctx == nil {
		return sc
	}
	spanCtx := trace.SpanFromContext(ctx).SpanContext()
	if spanCtx.HasTraceID() {
		sc.TraceID = spanCtx.TraceID().String()
	}
	return sc
}
