// Package httptransport assembles the public HTTP surface: the context
// handlers plus the operational endpoints every deployment expects.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registrar is implemented by context handlers that mount their own routes
// behind their own middleware chain.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires the operational endpoints and mounts each context handler.
// Health and metrics stay outside the handlers' middleware chains so probes
// are never logged, timed out or content-type checked.
func NewRouter(contexts ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	for _, c := range contexts {
		c.Register(r)
	}

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
