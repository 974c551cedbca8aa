package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from transport errors raised by the API connector.
var (
	// ErrNotFound indicates a requested entity does not exist on the platform.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Authentication errors.

	// ErrAuthRequired indicates no credentials are configured.
	// Run `nfield signin` before calling authenticated commands.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the domain/username/password combination
	// was rejected by the platform.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// Background task errors.

	// ErrTaskFaulted indicates a background task finished in the Faulted state.
	ErrTaskFaulted = errors.New("background task faulted")

	// ErrTaskTimeout indicates a background task did not reach a terminal
	// state before the wait deadline.
	ErrTaskTimeout = errors.New("background task wait timed out")
)
