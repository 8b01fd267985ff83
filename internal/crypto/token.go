package crypto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-token-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long a token stays valid when no other lifetime is configured.
const DefaultTokenTTL = 30 * time.Minute

// signingMethod is the only algorithm tokens are signed or accepted with.
var signingMethod = jwt.SigningMethodHS256

// tokenClaims is the payload layout on the wire: the identity fields flat
// next to the registered "exp" claim (epoch seconds).
type tokenClaims struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTCodec implements [TokenCodec] with HMAC-SHA256 signed JWTs.
// It is safe for concurrent use; the key is read-only after construction.
type JWTCodec struct {
	signKey    []byte
	defaultTTL time.Duration
	now        func() time.Time
	parser     *jwt.Parser
}

// CodecOption customizes a [JWTCodec].
type CodecOption func(*JWTCodec)

// WithClock replaces the wall clock used for issuing and expiry checks.
func WithClock(now func() time.Time) CodecOption {
	return func(c *JWTCodec) {
		c.now = now
	}
}

// NewJWTCodec constructs a codec signing with signKey. A non-positive
// defaultTTL selects [DefaultTokenTTL].
//
// Returns [ErrEmptySignKey] if signKey is empty.
func NewJWTCodec(signKey string, defaultTTL time.Duration, opts ...CodecOption) (*JWTCodec, error) {
	if signKey == "" {
		return nil, ErrEmptySignKey
	}
	if defaultTTL <= 0 {
		defaultTTL = DefaultTokenTTL
	}

	c := &JWTCodec{
		signKey:    []byte(signKey),
		defaultTTL: defaultTTL,
		now:        time.Now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{signingMethod.Alg()}),
			jwt.WithStrictDecoding(),
			// expiry is checked by Decode after the payload shape
			jwt.WithoutClaimsValidation(),
		),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Encode implements [TokenCodec].
//
// The clock is read once. The expiry is rounded up to whole seconds, the
// precision of the "exp" claim, so the returned claims compare equal to
// what Decode yields for the token and the token never lives shorter
// than ttl.
func (c *JWTCodec) Encode(claims models.Claims, ttl time.Duration) (string, models.Claims, error) {
	if err := claims.Validate(); err != nil {
		return "", models.Claims{}, fmt.Errorf("%w: %w", ErrInvalidClaims, err)
	}
	if ttl == 0 {
		ttl = c.defaultTTL
	}

	claims.ExpiresAt = ceilToSecond(c.now().Add(ttl)).UTC()

	token := jwt.NewWithClaims(signingMethod, tokenClaims{
		ID:       claims.ID,
		Username: claims.Username,
		Email:    claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})

	signed, err := token.SignedString(c.signKey)
	if err != nil {
		return "", models.Claims{}, fmt.Errorf("error occurred during signing token: %w", err)
	}

	return signed, claims, nil
}

// Decode implements [TokenCodec]. The checks run in a fixed order and the
// first failing one decides the error:
//  1. three non-empty segments with base64url header and payload, else
//     [ErrMalformedToken];
//  2. signature over header.payload, else [ErrInvalidSignature];
//  3. payload shape (id, username, exp), else [ErrMalformedToken];
//  4. expiry strictly in the future, else [ErrExpiredToken].
//
// Nothing from the payload is read before step 2 has passed.
func (c *JWTCodec) Decode(token string) (models.Claims, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 3 || segments[0] == "" || segments[1] == "" || segments[2] == "" {
		return models.Claims{}, ErrMalformedToken
	}
	for _, segment := range segments[:2] {
		if _, err := c.parser.DecodeSegment(segment); err != nil {
			return models.Claims{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
		}
	}

	if err := c.verifySignature(segments); err != nil {
		return models.Claims{}, err
	}

	var wire tokenClaims
	if _, err := c.parser.ParseWithClaims(token, &wire, c.keyFunc); err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			// header announces an algorithm other than HS256
			return models.Claims{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
		}
		return models.Claims{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	if wire.ExpiresAt == nil {
		return models.Claims{}, fmt.Errorf("%w: missing exp claim", ErrMalformedToken)
	}

	claims := models.Claims{
		ID:        wire.ID,
		Username:  wire.Username,
		Email:     wire.Email,
		ExpiresAt: wire.ExpiresAt.Time.UTC(),
	}
	if err := claims.Validate(); err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	if claims.Expired(c.now()) {
		return models.Claims{}, ErrExpiredToken
	}

	return claims, nil
}

// verifySignature recomputes the HMAC over the first two segments and
// compares it with the third in constant time. A signature segment that is
// not strict base64url cannot match any HMAC and is reported the same way.
func (c *JWTCodec) verifySignature(segments []string) error {
	signature, err := c.parser.DecodeSegment(segments[2])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	signingString := segments[0] + "." + segments[1]
	if err = signingMethod.Verify(signingString, signature, c.signKey); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	return nil
}

func ceilToSecond(t time.Time) time.Time {
	if truncated := t.Truncate(time.Second); !truncated.Equal(t) {
		return truncated.Add(time.Second)
	}
	return t
}

func (c *JWTCodec) keyFunc(*jwt.Token) (any, error) {
	return c.signKey, nil
}
