// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Token verification failures. Each one is terminal for the presented token:
// the client has to log in again.
var (
	// ErrMalformedToken is returned when the token is not three dot-separated
	// segments or its payload lacks a required claim or has one of the wrong type.
	ErrMalformedToken = errors.New("malformed token")

	// ErrInvalidSignature is returned when the signature segment does not
	// match the HMAC recomputed over header and payload with the current key.
	ErrInvalidSignature = errors.New("invalid token signature")

	// ErrExpiredToken is returned when a correctly signed token is past its expiry.
	ErrExpiredToken = errors.New("token is expired")
)

var (
	// ErrInvalidClaims is returned by Encode when the claims lack an id or username.
	ErrInvalidClaims = errors.New("invalid token claims")

	// ErrEmptySignKey is returned when a codec is constructed without a key.
	ErrEmptySignKey = errors.New("token sign key is empty")
)
