// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrAccountNotFound is returned when an account cannot be found by
	// username or ID.
	ErrAccountNotFound = errors.New("account not found")

	// ErrUsernameTaken is returned when attempting to register a username
	// that already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrPasswordMismatch is returned when the password and its
	// confirmation do not match at registration.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidCredentials is the single generic login failure. Unknown
	// username and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
