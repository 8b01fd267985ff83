package store

import (
	"context"
	"sync"
	"testing"

	"github.com/MKhiriev/go-token-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCredentials_Lookup(t *testing.T) {
	other := models.User{ID: 2, Username: "campus", Email: "campus@example.com", PasswordHash: "$2a$04$x"}
	store, err := NewMemoryCredentials(DemoUser, other)
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		want     models.User
		wantErr  error
	}{
		{"demo user", "fastcampus", DemoUser, nil},
		{"second user", "campus", other, nil},
		{"unknown user", "api", models.User{}, ErrUserNotFound},
		{"case sensitive", "FastCampus", models.User{}, ErrUserNotFound},
		{"empty username", "", models.User{}, ErrUserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := store.Lookup(context.Background(), tt.username)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, user)
		})
	}
}

func TestNewMemoryCredentials_RejectsBadRecords(t *testing.T) {
	tests := []struct {
		name    string
		users   []models.User
		wantErr error
	}{
		{"missing id", []models.User{{Username: "a", PasswordHash: "h"}}, ErrInvalidUserRecord},
		{"missing username", []models.User{{ID: 1, PasswordHash: "h"}}, ErrInvalidUserRecord},
		{"missing hash", []models.User{{ID: 1, Username: "a"}}, ErrInvalidUserRecord},
		{"duplicate", []models.User{DemoUser, DemoUser}, ErrDuplicateUsername},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewMemoryCredentials(tt.users...)
			assert.Nil(t, store)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMemoryCredentials_ConcurrentLookups(t *testing.T) {
	store, err := NewMemoryCredentials(DemoUser)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := store.Lookup(context.Background(), "fastcampus")
			assert.NoError(t, err)
			assert.Equal(t, DemoUser.ID, user.ID)
		}()
	}
	wg.Wait()
}
