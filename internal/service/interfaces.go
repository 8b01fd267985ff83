package service

import (
	"context"

	"github.com/MKhiriev/go-token-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService runs the stateless bearer-token flow. Every call starts
// unauthenticated and ends either with a result or a rejection error; no
// state survives between calls.
type AuthService interface {
	// Login exchanges a username and password for a signed token.
	Login(ctx context.Context, username, password string) (models.Token, error)

	// Authenticate resolves a presented token to the current user record.
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// metrics or logging.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}
