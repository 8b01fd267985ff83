package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-token-auth/internal/logger"
	"github.com/MKhiriev/go-token-auth/internal/metrics"
	"github.com/MKhiriev/go-token-auth/internal/service"
	"github.com/MKhiriev/go-token-auth/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewHandler_AppliesOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)
	check := func(context.Context) error { return nil }

	h := NewHandler(&service.Services{}, logger.Nop(),
		WithMetrics(m, reg),
		WithReadinessCheck(check),
		WithRequestTimeout(5*time.Second),
	)

	require.NotNil(t, h)
	assert.Same(t, m, h.metrics)
	assert.Equal(t, reg, h.gatherer)
	assert.NotNil(t, h.ready)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
}

func TestNewHandler_Defaults(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, logger.Nop())

	assert.Same(t, svc, h.services)
	assert.Nil(t, h.metrics)
	assert.Nil(t, h.gatherer)
	assert.Zero(t, h.requestTimeout)
}

func TestInit_Routes(t *testing.T) {
	reg := prometheus.NewRegistry()
	h, mocks := newTestHandler(t, WithMetrics(metrics.NewMetrics(reg), reg))
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.0.0").AnyTimes()
	router := h.Init()

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/version", http.StatusOK},
		{http.MethodGet, "/healthz/liveness", http.StatusOK},
		{http.MethodGet, "/healthz/readiness", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		// auth middleware answers before the handler
		{http.MethodGet, "/users/me", http.StatusUnauthorized},
		// unknown method on a known route hides the route
		{http.MethodPost, "/api/version", http.StatusNotFound},
		{http.MethodGet, "/login", http.StatusNotFound},
		{http.MethodDelete, "/users/me", http.StatusNotFound},
		{http.MethodGet, "/api/nonexistent", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(router, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestInit_MetricsRouteAbsentWithoutGatherer(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h.Init(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_LoginThenMe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)
	h, mocks := newTestHandler(t, WithMetrics(m, reg), WithRequestTimeout(time.Second))
	router := h.Init()

	user := models.User{ID: 1, Username: "fastcampus", Email: "fastcampus@fastcampus.com"}
	mocks.auth.EXPECT().
		Login(gomock.Any(), "fastcampus", "secret").
		Return(models.Token{SignedString: "a.b.c", Claims: user.Claims()}, nil)
	mocks.auth.EXPECT().
		Authenticate(gomock.Any(), "a.b.c").
		Return(user, nil)

	form := url.Values{"username": {"fastcampus"}, "password": {"secret"}}
	loginReq := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	loginReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	loginRR := serve(router, loginReq)
	require.Equal(t, http.StatusOK, loginRR.Code)
	authHeader := loginRR.Header().Get("Authorization")
	require.Equal(t, "Bearer a.b.c", authHeader)

	meReq := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	meReq.Header.Set("Authorization", authHeader)

	meRR := serve(router, meReq)
	require.Equal(t, http.StatusOK, meRR.Code)
	assert.JSONEq(t, `{"id":1,"username":"fastcampus","email":"fastcampus@fastcampus.com"}`, meRR.Body.String())
	assert.NotEmpty(t, meRR.Header().Get(traceIDHeader))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "200")))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().
		Authenticate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (models.User, error) {
			panic(errors.New("unexpected"))
		})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer a.b.c")

	rr := serve(h.Init(), req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
