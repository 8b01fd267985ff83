package http

import (
	"net/http"

	"github.com/MKhiriev/go-token-auth/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router serving the auth API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/login", h.login)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/healthz/liveness", h.liveness)
		r.Get("/healthz/readiness", h.readiness)
		if h.gatherer != nil {
			r.Method(http.MethodGet, "/metrics", metrics.Handler(h.gatherer))
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users/me", h.me)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
