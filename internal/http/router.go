package http

import (
	"net/http"

	"event-insights/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the operational HTTP router. The loader
// itself takes no traffic; this surface only exposes liveness and metrics
// for the duration of a run.
func NewRouter() http.Handler {
	router := chi.NewRouter()

	// Routes
	router.Get("/healthz", healthzHandler)
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

func healthzHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
