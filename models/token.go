package models

// Token is an issued bearer token together with the claims it was signed over.
type Token struct {
	// SignedString is the compact form header.payload.signature, each segment
	// base64url-encoded. This is what travels in the Authorization header.
	SignedString string `json:"-"`

	// Claims are the identity facts and expiry embedded in SignedString.
	Claims Claims `json:"-"`
}

// String returns the compact serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
