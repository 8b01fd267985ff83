package models

// Credentials is a username and plaintext password pair submitted at login.
// The password is never stored or logged.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"-"`
}
