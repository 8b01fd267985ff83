package config

import (
	"fmt"
	"time"
)

// Client defaults, used by authctl when neither env nor flags set a value.
const (
	DefaultClientServerURL      = "http://localhost:8080"
	DefaultClientRequestTimeout = 10 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the auth server (e.g. "http://localhost:8080").
	// Env: AUTHCTL_SERVER_URL
	HTTPAddress string `env:"SERVER_URL"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: AUTHCTL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the authctl command-line client.
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter ClientAdapter `envPrefix:"AUTHCTL_"`
	// Token is a previously issued bearer token used by commands that call
	// protected routes.
	// Env: AUTHCTL_TOKEN
	Token Secret `env:"AUTHCTL_TOKEN"`
}

// GetClientConfig loads the client configuration from the environment and
// fills unset fields with the client defaults. Command-line flags are
// applied on top by the caller.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultClientServerURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientRequestTimeout
	}

	return cfg, cfg.validate()
}

// Validate checks a client config after command-line overrides were applied.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
