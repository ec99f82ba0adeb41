package auth

import "errors"

var (
	// ErrEmptyCredentials rejects signup with a blank username or password.
	ErrEmptyCredentials = errors.New("Username and password cannot be empty.")

	// ErrWeakCredentials rejects signup below the minimum lengths.
	ErrWeakCredentials = errors.New("Username must be at least 3 characters, password at least 6 characters.")

	// ErrDuplicateUser rejects signup over an existing username.
	ErrDuplicateUser = errors.New("Username already exists. Please choose a different username.")

	// ErrInvalidCredentials rejects login that matches no record exactly.
	ErrInvalidCredentials = errors.New("Invalid username or password.")

	// ErrNoSession rejects logout with nobody logged in.
	ErrNoSession = errors.New("No user is currently logged in.")
)

// UnauthorizedError reports a gated operation invoked without a session.
// Action names the attempted operation, e.g. "add events".
type UnauthorizedError struct {
	Action string
}

func (e *UnauthorizedError) Error() string {
	return "You must be logged in to " + e.Action + "."
}
