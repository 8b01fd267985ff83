package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login when the password does not
	// match the stored hash or the submitted credentials are incomplete.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenCreationFailed is returned by Login when a verified user could
	// not be issued a token.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrVersionIsNotSpecified is returned when the app info service is
	// built without a version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
