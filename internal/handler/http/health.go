package http

import (
	"net/http"

	"github.com/MKhiriev/go-token-auth/internal/logger"
	"github.com/MKhiriev/go-token-auth/internal/utils"
)

func (h *Handler) liveness(w http.ResponseWriter, _ *http.Request) {
	utils.WriteText(w, "ok", http.StatusOK)
}

// readiness answers 503 while the configured readiness check fails.
func (h *Handler) readiness(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		if err := h.ready(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Msg("not ready")
			utils.WriteText(w, "not ready", http.StatusServiceUnavailable)
			return
		}
	}
	utils.WriteText(w, "ready", http.StatusOK)
}
