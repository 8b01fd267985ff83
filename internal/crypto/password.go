package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordCost is the bcrypt work factor used for newly hashed passwords.
const DefaultPasswordCost = 12

// BcryptVerifier implements [PasswordVerifier] with bcrypt. The salt and the
// cost are embedded in every hash, so hashes produced with another cost
// still verify.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier returns a verifier hashing with cost. Values outside
// bcrypt's accepted range fall back to [DefaultPasswordCost].
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordCost
	}
	return &BcryptVerifier{cost: cost}
}

// Verify implements [PasswordVerifier]. The comparison is constant time.
func (b *BcryptVerifier) Verify(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}

// Hash implements [PasswordVerifier].
func (b *BcryptVerifier) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}
