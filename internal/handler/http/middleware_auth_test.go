package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-token-auth/internal/crypto"
	"github.com/MKhiriev/go-token-auth/internal/store"
	"github.com/MKhiriev/go-token-auth/internal/utils"
	"github.com/MKhiriev/go-token-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer a.b.c", wantToken: "a.b.c"},
		{name: "lowercase scheme", header: "bearer a.b.c", wantToken: "a.b.c"},
		{name: "trailing spaces trimmed", header: "Bearer a.b.c  ", wantToken: "a.b.c"},
		{name: "empty header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "scheme and space", header: "Bearer ", wantErr: ErrEmptyToken},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "token without scheme", header: "a.b.c", wantErr: ErrInvalidAuthorizationHeader},
		{name: "two tokens", header: "Bearer a.b.c d.e.f", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth_AcceptsValidToken(t *testing.T) {
	h, mocks := newTestHandler(t)

	user := models.User{ID: 1, Username: "fastcampus", Email: "fastcampus@fastcampus.com"}
	mocks.auth.EXPECT().Authenticate(gomock.Any(), "a.b.c").Return(user, nil)

	var got models.User
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = utils.GetIdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/users/me", nil))
	req.Header.Set("Authorization", "Bearer a.b.c")

	rr := serve(h.auth(next), req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestAuth_RejectsWithoutCallingService(t *testing.T) {
	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer "} {
		t.Run(fmt.Sprintf("%q", header), func(t *testing.T) {
			// no EXPECT: any call to the auth service fails the test
			h, _ := newTestHandler(t)

			req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/users/me", nil))
			if header != "" {
				req.Header.Set("Authorization", header)
			}

			rr := serve(h.auth(http.NotFoundHandler()), req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, unauthorizedMessage, strings.TrimSpace(rr.Body.String()))
		})
	}
}

func TestAuth_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"malformed token", crypto.ErrMalformedToken, http.StatusUnauthorized, unauthorizedMessage},
		{"invalid signature", fmt.Errorf("%w: boom", crypto.ErrInvalidSignature), http.StatusUnauthorized, unauthorizedMessage},
		{"expired token", crypto.ErrExpiredToken, http.StatusUnauthorized, unauthorizedMessage},
		{"user gone", fmt.Errorf("lookup: %w", store.ErrUserNotFound), http.StatusUnauthorized, unauthorizedMessage},
		{"store down", store.ErrStoreUnavailable, http.StatusServiceUnavailable, unavailableMessage},
		{"canceled", context.Canceled, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			mocks.auth.EXPECT().Authenticate(gomock.Any(), "a.b.c").Return(models.User{}, tt.err)

			nextCalled := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { nextCalled = true })

			req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/users/me", nil))
			req.Header.Set("Authorization", "Bearer a.b.c")

			rr := serve(h.auth(next), req)

			assert.False(t, nextCalled)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rr.Body.String()))
		})
	}
}
