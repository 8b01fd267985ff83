package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrServiceUnavailable  = errors.New("server temporarily unavailable")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoToken is returned by authenticated calls made before a token is set.
	ErrNoToken = errors.New("no bearer token set")

	// ErrNoTokenInResponse is returned when a successful login carries no token.
	ErrNoTokenInResponse = errors.New("no token in login response")
)
