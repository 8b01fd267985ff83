package http

import (
	"net/http"
	"time"
)

// withMetrics counts every served request by method and status.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := newResponseWriter(w)

		next.ServeHTTP(mw, r)

		h.metrics.RecordHTTPRequest(r.Method, mw.Status(), time.Since(start))
	})
}
