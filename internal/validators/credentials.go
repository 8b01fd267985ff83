package validators

import (
	"context"

	"github.com/MKhiriev/go-token-auth/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldUsername targets the login name of a credentials pair.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password of a credentials pair.
	FieldPassword = "password"
)

// Length limits, in bytes. bcrypt only reads the first 72 bytes of a
// password and refuses longer input.
const (
	MaxUsernameLength = 255
	MaxPasswordLength = 72
)

// CredentialsValidator implements [Validator] for login input:
// models.Credentials and bare token strings.
type CredentialsValidator struct{}

// NewCredentialsValidator constructs a new CredentialsValidator
// and returns it as the Validator interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Credentials / *models.Credentials
//   - string (a bearer token; only emptiness is checked)
//
// Returns ErrUnsupportedType for anything else.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)
	case string:
		if value == "" {
			return ErrEmptyTokenString
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}

// validateCredentials checks the named fields of c, by default both.
// Returns the first encountered validation error or nil.
func (v *CredentialsValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if c.Username == "" {
				return ErrEmptyUsername
			}
			if len(c.Username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
			if len(c.Password) > MaxPasswordLength {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
