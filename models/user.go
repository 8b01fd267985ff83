package models

// User is the credential record of an account, owned by a credential store.
// A User is immutable once loaded; the same value doubles as the
// authenticated identity handed to request handlers.
type User struct {
	// ID is the numeric identifier of the account.
	ID int64 `json:"id"`

	// Username is the unique login name and the lookup key of the record.
	Username string `json:"username"`

	// Email is the contact address of the account.
	Email string `json:"email"`

	// PasswordHash is the salted bcrypt hash of the account password.
	// It never leaves the server.
	PasswordHash string `json:"-"`
}

// Claims builds the identity facts embedded into a token for u.
// ExpiresAt is left zero; the token codec sets it at issuance.
func (u User) Claims() Claims {
	return Claims{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
