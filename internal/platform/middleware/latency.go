package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"edubase/internal/platform/metrics"
)

// LatencyMiddleware records request duration against the route pattern, not
// the raw path, so URNs do not explode the label space. A nil metrics value
// disables observation; handler tests pass nil.
func LatencyMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m == nil {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			m.ObserveRequestDuration(r.Method, route, rec.status, time.Since(start).Seconds())
		})
	}
}
