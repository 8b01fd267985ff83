package store

import (
	"context"

	"github.com/MKhiriev/go-token-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_store_mock.go -package=mock

// CredentialStore resolves credential records by username. It is the only
// way the authentication flow reaches persisted users.
type CredentialStore interface {
	// Lookup returns the record whose Username equals username, or an error
	// matching [ErrUserNotFound] if there is none.
	Lookup(ctx context.Context, username string) (models.User, error)
}

// ErrorClassificator decides whether a failed database call may succeed on retry.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
