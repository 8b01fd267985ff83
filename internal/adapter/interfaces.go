// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the auth server API.
//
// [ServerAdapter] hides the transport from callers such as the authctl
// command. Error values defined in errors.go are mapped from HTTP status codes
// by mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-token-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the auth server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Login exchanges credentials for a bearer token and stores it via
	// SetToken. Wrong credentials yield [ErrUnauthorized].
	Login(ctx context.Context, username, password string) (string, error)

	// Me returns the identity behind the stored token. Returns [ErrNoToken]
	// without contacting the server when no token is set.
	Me(ctx context.Context) (models.User, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
