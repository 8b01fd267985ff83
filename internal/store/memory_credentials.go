package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-token-auth/models"
)

// DemoUser is the record served when no database is configured. Its hash
// is a bcrypt (cost 12) hash of the demo password.
var DemoUser = models.User{
	ID:           1,
	Username:     "fastcampus",
	Email:        "fastcampus@fastcampus.com",
	PasswordHash: "$2b$12$kEsp4W6Vrm57c24ez4H1R.rdzYrXipAuSUZR.hxbqtYpjPLWbYtwS",
}

// memoryCredentials is a [CredentialStore] over a fixed set of records.
// The map is never written after construction, so lookups need no locking.
type memoryCredentials struct {
	users map[string]models.User
}

// NewMemoryCredentials builds a read-only store holding users.
//
// Returns [ErrInvalidUserRecord] for a record without id, username or
// password hash and [ErrDuplicateUsername] if a username repeats.
func NewMemoryCredentials(users ...models.User) (CredentialStore, error) {
	byName := make(map[string]models.User, len(users))
	for _, u := range users {
		if u.ID <= 0 || u.Username == "" || u.PasswordHash == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidUserRecord, u.Username)
		}
		if _, ok := byName[u.Username]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateUsername, u.Username)
		}
		byName[u.Username] = u
	}

	return &memoryCredentials{users: byName}, nil
}

// Lookup implements [CredentialStore].
func (m *memoryCredentials) Lookup(_ context.Context, username string) (models.User, error) {
	user, ok := m.users[username]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}
