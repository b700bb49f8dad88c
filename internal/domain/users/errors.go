package users

import "errors"

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so login failures are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
