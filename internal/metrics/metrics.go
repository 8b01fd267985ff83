// Package metrics holds the Prometheus collectors of the auth server and
// the registry they are exposed from.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values of the auth counters.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidRequest     = "invalid_request"
	OutcomeUserNotFound       = "user_not_found"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeMalformedToken     = "malformed_token"
	OutcomeInvalidSignature   = "invalid_signature"
	OutcomeExpiredToken       = "expired_token"
	OutcomeError              = "error"
)

// Metrics contains the custom collectors of the auth server.
type Metrics struct {
	LoginTotal          *prometheus.CounterVec
	AuthenticateTotal   *prometheus.CounterVec
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// Panics if registration fails (following prometheus convention).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LoginTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_login_total",
				Help: "Total number of login attempts by outcome",
			},
			[]string{"outcome"},
		),
		AuthenticateTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_authenticate_total",
				Help: "Total number of token authentications by outcome",
			},
			[]string{"outcome"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method and status",
			},
			[]string{"method", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}

	reg.MustRegister(m.LoginTotal)
	reg.MustRegister(m.AuthenticateTotal)
	reg.MustRegister(m.HTTPRequestsTotal)
	reg.MustRegister(m.HTTPRequestDuration)

	return m
}

// NewRegistry returns a registry holding the standard Go and process
// collectors. A dedicated registry keeps the global one untouched.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return registry
}

// Handler serves the exposition format of everything gatherer collects.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// RecordLogin increments the login counter for outcome.
func (m *Metrics) RecordLogin(outcome string) {
	m.LoginTotal.WithLabelValues(outcome).Inc()
}

// RecordAuthenticate increments the authentication counter for outcome.
func (m *Metrics) RecordAuthenticate(outcome string) {
	m.AuthenticateTotal.WithLabelValues(outcome).Inc()
}

// RecordHTTPRequest counts a served request and observes its duration.
func (m *Metrics) RecordHTTPRequest(method string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}
