package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-token-auth/internal/crypto"
	"github.com/MKhiriev/go-token-auth/internal/service"
	"github.com/MKhiriev/go-token-auth/internal/store"
)

// Response bodies. Login failures never tell an unknown user from a wrong
// password, and token failures never tell which check rejected the token.
const (
	invalidCredentialsMessage = "invalid username/password"
	unauthorizedMessage       = "unauthorized"
	unavailableMessage        = "service temporarily unavailable"
)

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{store.ErrUserNotFound, http.StatusUnauthorized},
	{crypto.ErrMalformedToken, http.StatusUnauthorized},
	{crypto.ErrInvalidSignature, http.StatusUnauthorized},
	{crypto.ErrExpiredToken, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrEmptyToken, http.StatusUnauthorized},

	{store.ErrStoreUnavailable, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

func loginErrorMessage(status int) string {
	if status == http.StatusUnauthorized {
		return invalidCredentialsMessage
	}
	return statusMessage(status)
}

func authErrorMessage(status int) string {
	if status == http.StatusUnauthorized {
		return unauthorizedMessage
	}
	return statusMessage(status)
}

func statusMessage(status int) string {
	if status == http.StatusServiceUnavailable {
		return unavailableMessage
	}
	return http.StatusText(status)
}
