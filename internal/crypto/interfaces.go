// Package crypto holds the cryptographic primitives of the authentication
// flow: salted password verification and signing/verification of compact
// bearer tokens.
package crypto

import (
	"time"

	"github.com/MKhiriev/go-token-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordVerifier checks plaintext passwords against stored salted hashes.
type PasswordVerifier interface {
	// Verify reports whether plaintext matches storedHash. A malformed hash
	// is reported as a mismatch, never as an error.
	Verify(plaintext, storedHash string) bool

	// Hash produces a salted hash of plaintext suitable for storing in a
	// credential record.
	Hash(plaintext string) (string, error)
}

// TokenCodec issues and verifies signed bearer tokens.
type TokenCodec interface {
	// Encode signs claims into a compact token that expires ttl after the
	// moment of the call. A zero ttl selects the codec default. The returned
	// claims carry the expiry exactly as it is encoded on the wire.
	Encode(claims models.Claims, ttl time.Duration) (string, models.Claims, error)

	// Decode verifies token and returns its claims. The error is one of
	// [ErrMalformedToken], [ErrInvalidSignature] or [ErrExpiredToken].
	Decode(token string) (models.Claims, error)
}
