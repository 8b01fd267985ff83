package models

import (
	"errors"
	"time"
)

var (
	errClaimsNoID       = errors.New("claims: id must be positive")
	errClaimsNoUsername = errors.New("claims: username is required")
)

// Claims is the set of identity facts and the expiry carried by a token.
// A new value is built for every issued token.
type Claims struct {
	ID        int64
	Username  string
	Email     string
	ExpiresAt time.Time
}

// Validate reports whether c has the fields every token must carry.
// Email is optional.
func (c Claims) Validate() error {
	if c.ID <= 0 {
		return errClaimsNoID
	}
	if c.Username == "" {
		return errClaimsNoUsername
	}

	return nil
}

// Expired reports whether c is no longer valid at now.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}
