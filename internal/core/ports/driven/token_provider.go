package driven

import "context"

// TokenProvider provides authentication tokens for platform API calls.
// Implementations handle sign-in and token rotation transparently: the
// platform rotates tokens by returning a replacement on each response,
// and the provider always hands out the freshest one.
type TokenProvider interface {
	// GetToken returns a valid authentication token, signing in first
	// if no token is held yet.
	GetToken(ctx context.Context) (string, error)

	// Domain returns the platform domain the provider signs in to.
	Domain() string

	// IsAuthenticated reports whether a token is currently held.
	IsAuthenticated() bool
}
