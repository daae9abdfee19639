package account

import "errors"

var (
	ErrNotFound = errors.New("user not found")
	// ErrInvalidAuth covers both wrong email and wrong password, so a
	// caller cannot tell registered emails apart from unknown ones.
	ErrInvalidAuth  = errors.New("invalid credentials")
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidInput = errors.New("invalid input")
)
