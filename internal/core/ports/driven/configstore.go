package driven

// ConfigStore provides persistent application configuration.
// Keys use dot notation (e.g. "server.url", "auth.domain").
type ConfigStore interface {
	// Get retrieves a raw value. Returns false if the key is absent.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" if absent.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 if absent.
	GetInt(key string) int

	// GetBool retrieves a boolean value, or false if absent.
	GetBool(key string) bool

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Delete removes a key and persists immediately.
	Delete(key string) error
}

// Well-known configuration keys.
const (
	ConfigKeyServerURL    = "server.url"
	ConfigKeyAuthDomain   = "auth.domain"
	ConfigKeyAuthUsername = "auth.username"
	ConfigKeyAuthToken    = "auth.token"
	ConfigKeyPollInterval = "tasks.poll_interval_seconds"
	ConfigKeyRequestRate  = "client.requests_per_second"
)
