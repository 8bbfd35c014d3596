package scope

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader is the header consulted and echoed by Middleware.
const RequestIDHeader = "X-Request-ID"

// Middleware ensures every request carries a request ID: an incoming
// X-Request-ID header is reused, otherwise a fresh ID is generated.
// The ID is stored in the request scope and echoed on the response so
// clients can correlate.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = newRequestID()
		}
		ctx := WithRequestID(r.Context(), id)
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request ID set by Middleware, or
// "" when none is present.
func RequestIDFromContext(ctx context.Context) string {
	return FromContext(ctx).RequestID
}

// newRequestID prefers time-ordered UUIDs; the timestamp fallback
// keeps requests identifiable even if the random source fails.
func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("req-%x", time.Now().UnixNano())
	}
	return id.String()
}
