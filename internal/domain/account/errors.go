package account

import "errors"

var (
	// ErrInvalidCredentials indicates an unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrSessionNotFound indicates the token is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidInput indicates malformed account input.
	ErrInvalidInput = errors.New("invalid account input")
)
