package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-token-auth/internal/crypto"
	"github.com/MKhiriev/go-token-auth/internal/logger"
	"github.com/MKhiriev/go-token-auth/internal/store"
	"github.com/MKhiriev/go-token-auth/internal/validators"
	"github.com/MKhiriev/go-token-auth/models"
)

// missingUserHash is checked against when the username is unknown, so a
// miss costs one bcrypt comparison like a wrong password does.
const missingUserHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// authService is the concrete implementation of AuthService.
// It resolves users through a CredentialStore, checks passwords with a
// PasswordVerifier and issues and verifies tokens with a TokenCodec.
// All fields are read-only after construction, so it is safe for
// concurrent use.
type authService struct {
	credentials store.CredentialStore
	verifier    crypto.PasswordVerifier
	codec       crypto.TokenCodec
	validator   validators.Validator

	// tokenDuration is the lifetime of issued tokens; zero defers to the
	// codec default.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over the given collaborators.
func NewAuthService(
	credentials store.CredentialStore,
	verifier crypto.PasswordVerifier,
	codec crypto.TokenCodec,
	tokenDuration time.Duration,
	logger *logger.Logger,
) AuthService {
	return &authService{
		credentials:   credentials,
		verifier:      verifier,
		codec:         codec,
		validator:     validators.NewCredentialsValidator(),
		tokenDuration: tokenDuration,
		logger:        logger,
	}
}

// Login authenticates a user by password and issues a token.
//
// Returns the token or:
//   - ErrInvalidCredentials if username or password is empty or too long;
//   - an error wrapping store.ErrUserNotFound if no such user exists;
//   - ErrInvalidCredentials if the password does not match;
//   - an error wrapping ErrTokenCreationFailed if signing fails.
//
// The password never appears in logs.
func (a *authService) Login(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	credentials := models.Credentials{Username: username, Password: password}
	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Warn().Err(err).Str("username", username).Msg("incomplete credentials provided")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	user, err := a.credentials.Lookup(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			a.verifier.Verify(password, missingUserHash)
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.verifier.Verify(password, user.PasswordHash) {
		log.Warn().Int64("id", user.ID).Str("username", user.Username).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	signed, claims, err := a.codec.Encode(user.Claims(), a.tokenDuration)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Int64("id", user.ID).Time("expires_at", claims.ExpiresAt).Msg("token issued")
	return models.Token{SignedString: signed, Claims: claims}, nil
}

// Authenticate verifies token and resolves the user it was issued to.
//
// Codec failures (crypto.ErrMalformedToken, crypto.ErrInvalidSignature,
// crypto.ErrExpiredToken) are returned as they are. A validly signed token
// whose user no longer exists yields an error wrapping store.ErrUserNotFound.
func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	claims, err := a.codec.Decode(token)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.User{}, err
	}

	user, err := a.credentials.Lookup(ctx, claims.Username)
	if err != nil {
		log.Err(err).Int64("id", claims.ID).Str("username", claims.Username).Msg("token subject could not be resolved")
		return models.User{}, fmt.Errorf("token subject lookup failed: %w", err)
	}

	return user, nil
}
