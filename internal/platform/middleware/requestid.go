// Package middleware provides the HTTP middleware chain applied by handlers:
// request identity, client metadata, logging, recovery, timeouts, content
// type enforcement and latency metrics. Request-scoped values are stored via
// pkg/requestcontext so services never import net/http to read them.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"edubase/pkg/requestcontext"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns every request an identifier: the inbound X-Request-ID
// when the caller supplied one, otherwise a fresh UUID. The identifier is
// stored in the context and echoed on the response for correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID retrieves the request ID from the context.
func GetRequestID(ctx context.Context) string {
	return requestcontext.RequestID(ctx)
}
