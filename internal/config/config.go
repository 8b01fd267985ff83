// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-token-auth server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the token signing key, token lifetime and the application
	// version.
	App App `envPrefix:"APP_" json:"app"`

	// Storage holds the credential database settings. An empty DSN selects
	// the in-memory demo store.
	Storage Storage `envPrefix:"STORAGE_" json:"storage"`

	// Server holds the listen address and request timeout of the HTTP server.
	Server Server `envPrefix:"SERVER_" json:"server"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Storage groups the configuration of the credential store backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_" json:"db"`
}

// App holds application-level configuration values that control token
// signing, token lifecycle, and versioning.
type App struct {
	// TokenSignKey is the HMAC-SHA256 key used to sign and verify tokens.
	// Required. Never printed: see [Secret].
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey Secret `env:"TOKEN_SIGN_KEY" json:"token_sign_key"`

	// TokenDuration specifies how long a token remains valid after
	// issuance (e.g. "1h", "30m"). Defaults to [DefaultTokenDuration].
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" json:"token_duration"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" json:"http_address"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the connection string handed to the driver: a PostgreSQL URL
	// for pgx or a file path for sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" json:"dsn"`

	// Driver is the database/sql driver name, "pgx" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER" json:"driver"`

	// Migrate applies the embedded schema migrations at startup.
	// Env: STORAGE_DB_MIGRATE
	Migrate bool `env:"MIGRATE" json:"migrate"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults fill whatever is still unset afterwards. Returns a fully populated
// *StructuredConfig or an error if any source fails to load or the final
// config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
