package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-token-auth/internal/logger"
	"github.com/MKhiriev/go-token-auth/internal/mock"
	"github.com/MKhiriev/go-token-auth/internal/service"
	"go.uber.org/mock/gomock"
)

// testServices bundles the mocked services behind a Handler.
type testServices struct {
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, opts ...Option) (*Handler, testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := testServices{
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    mocks.auth,
		AppInfoService: mocks.appInfo,
	}, logger.Nop(), opts...)

	return h, mocks
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

func serve(handler http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, r)
	return rr
}
