// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for carrying the authenticated identity in a context,
// HTTP response writing, HTTP client initialization and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-token-auth/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the auth middleware stores the
// authenticated [models.User] of the current request.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying user as the authenticated
// identity. The identity lives only as long as the request context.
func WithIdentity(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, user)
}

// GetIdentityFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true : an identity was stored by [WithIdentity]
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	user, ok := utils.GetIdentityFromContext(ctx)
//	if !ok {
//	    // request did not pass the auth middleware
//	}
func GetIdentityFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(IdentityCtxKey).(models.User)
	return user, ok
}
