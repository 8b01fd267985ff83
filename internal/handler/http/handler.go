package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-token-auth/internal/logger"
	"github.com/MKhiriev/go-token-auth/internal/metrics"
	"github.com/MKhiriev/go-token-auth/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// ReadinessCheck reports whether the backing stores can serve requests.
type ReadinessCheck func(ctx context.Context) error

type Handler struct {
	services *service.Services

	metrics        *metrics.Metrics
	gatherer       prometheus.Gatherer
	ready          ReadinessCheck
	requestTimeout time.Duration

	logger *logger.Logger
}

// Option customizes a [Handler].
type Option func(*Handler)

// WithMetrics counts served requests in m and exposes gatherer on /metrics.
func WithMetrics(m *metrics.Metrics, gatherer prometheus.Gatherer) Option {
	return func(h *Handler) {
		h.metrics = m
		h.gatherer = gatherer
	}
}

// WithReadinessCheck makes /healthz/readiness answer 503 while check fails.
func WithReadinessCheck(check ReadinessCheck) Option {
	return func(h *Handler) {
		h.ready = check
	}
}

// WithRequestTimeout cancels request contexts after d. Zero disables it.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Bool("metrics", h.metrics != nil).Dur("request_timeout", h.requestTimeout).Msg("http handler created")
	return h
}
