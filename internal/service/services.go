package service

import (
	"fmt"

	"github.com/MKhiriev/go-token-auth/internal/config"
	"github.com/MKhiriev/go-token-auth/internal/crypto"
	"github.com/MKhiriev/go-token-auth/internal/logger"
	"github.com/MKhiriev/go-token-auth/internal/metrics"
	"github.com/MKhiriev/go-token-auth/internal/store"
)

// Services groups the business services handed to the transport layer.
type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. The token codec is keyed
// with cfg.App.TokenSignKey; when m is non-nil the auth service outcomes
// are counted.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	codec, err := crypto.NewJWTCodec(cfg.App.TokenSignKey.Reveal(), cfg.App.TokenDuration)
	if err != nil {
		return nil, fmt.Errorf("error creating token codec: %w", err)
	}

	var authService AuthService = NewAuthService(
		storages.Credentials,
		crypto.NewBcryptVerifier(crypto.DefaultPasswordCost),
		codec,
		cfg.App.TokenDuration,
		logger,
	)
	if m != nil {
		authService = NewAuthMetricsService(m).Wrap(authService)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    authService,
		AppInfoService: appInfoService,
	}, nil
}
