// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envConfig lists the configuration roots that can be read from the
// environment: the auth server's and the authctl client's.
type envConfig interface {
	StructuredConfig | ClientConfig
}

// parseEnv fills cfg from APP_*, STORAGE_*, SERVER_* or AUTHCTL_* variables,
// following the `env` and `envPrefix` tags. Unset variables leave fields at
// their zero value so defaults and flags can still apply.
func parseEnv[T envConfig](cfg *T) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading configuration from environment: %w", err)
	}

	return nil
}
