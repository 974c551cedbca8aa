package nfield

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
)

// Connector-specific errors.
var (
	// ErrNoCredentials indicates the client was built without sign-in
	// credentials or a saved token.
	ErrNoCredentials = errors.New("nfield: no credentials configured")

	// ErrEmptyServerURL indicates no server URL was supplied.
	ErrEmptyServerURL = errors.New("nfield: server URL is required")

	// ErrSignInFailed indicates the platform rejected the
	// domain/username/password combination. It wraps
	// domain.ErrAuthInvalid so callers can match either sentinel.
	ErrSignInFailed = fmt.Errorf("nfield: sign-in failed: %w", domain.ErrAuthInvalid)
)

// RateLimitError represents a rate limit exceeded error with reset time.
type RateLimitError struct {
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("nfield: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// APIError represents a platform API error response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("nfield: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return errors.Is(err, domain.ErrNotFound)
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return errors.Is(err, ErrSignInFailed) || errors.Is(err, domain.ErrAuthInvalid)
}

// IsConflict checks if the error indicates the entity already exists.
func IsConflict(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusConflict
	}
	return errors.Is(err, domain.ErrAlreadyExists)
}
