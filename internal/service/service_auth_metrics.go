package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-token-auth/internal/crypto"
	"github.com/MKhiriev/go-token-auth/internal/metrics"
	"github.com/MKhiriev/go-token-auth/internal/store"
	"github.com/MKhiriev/go-token-auth/internal/validators"
	"github.com/MKhiriev/go-token-auth/models"
)

// AuthMetricsService counts the outcomes of the wrapped AuthService.
type AuthMetricsService struct {
	inner   AuthService
	metrics *metrics.Metrics
}

// NewAuthMetricsService returns a wrapper recording into m.
func NewAuthMetricsService(m *metrics.Metrics) AuthServiceWrapper {
	return &AuthMetricsService{metrics: m}
}

// Wrap implements AuthServiceWrapper.
func (s *AuthMetricsService) Wrap(inner AuthService) AuthService {
	s.inner = inner
	return s
}

// Login implements AuthService.
func (s *AuthMetricsService) Login(ctx context.Context, username, password string) (models.Token, error) {
	token, err := s.inner.Login(ctx, username, password)
	s.metrics.RecordLogin(outcome(err))
	return token, err
}

// Authenticate implements AuthService.
func (s *AuthMetricsService) Authenticate(ctx context.Context, token string) (models.User, error) {
	user, err := s.inner.Authenticate(ctx, token)
	s.metrics.RecordAuthenticate(outcome(err))
	return user, err
}

// outcome maps an AuthService result to a metrics label.
func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, validators.ErrEmptyUsername),
		errors.Is(err, validators.ErrEmptyPassword),
		errors.Is(err, validators.ErrUsernameTooLong),
		errors.Is(err, validators.ErrPasswordTooLong):
		return metrics.OutcomeInvalidRequest
	case errors.Is(err, ErrInvalidCredentials):
		return metrics.OutcomeInvalidCredentials
	case errors.Is(err, store.ErrUserNotFound):
		return metrics.OutcomeUserNotFound
	case errors.Is(err, crypto.ErrMalformedToken):
		return metrics.OutcomeMalformedToken
	case errors.Is(err, crypto.ErrInvalidSignature):
		return metrics.OutcomeInvalidSignature
	case errors.Is(err, crypto.ErrExpiredToken):
		return metrics.OutcomeExpiredToken
	default:
		return metrics.OutcomeError
	}
}
