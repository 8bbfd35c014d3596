package scope

import (
	"context"

	"github.com/philipp01105/ctxlog/core"
)

// Provider extracts the ambient scope from a context. Implementations
// return the zero scope when nothing is present and must tolerate nil
// contexts.
type Provider interface {
	Scope(ctx context.Context) core.Scope
}

// ContextProvider reads the scope stored by NewContext and the WithX
// helpers. It is the default provider.
type ContextProvider struct{}

// Scope implements Provider.
func (ContextProvider) Scope(ctx context.Context) core.Scope {
	return FromContext(ctx)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context) core.Scope

// Scope implements Provider.
func (f ProviderFunc) Scope(ctx context.Context) core.Scope { return f(ctx) }

// Chain combines providers field-by-field: for each scope field the
// first provider returning a non-empty value wins. Providers listed
// later are only consulted for fields still missing.
func Chain(providers ...Provider) Provider {
	chained := make([]Provider, len(providers))
	copy(chained, providers)
	return ProviderFunc(func(ctx context.Context) core.Scope {
		var sc core.Scope
		for _, p := range chained {
			got := p.Scope(ctx)
			if sc.TraceID == "" {
				sc.TraceID = got.TraceID
			}
			if sc.RequestID == "" {
				sc.RequestID = got.RequestID
			}
			if sc.UserID == "" {
				sc.UserID = got.UserID
			}
			if sc.TraceID != "" && sc.RequestID != "" && sc.UserID != "" {
				break
			}
		}
		return sc
	})
}
