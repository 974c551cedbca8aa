package nfield

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/fieldwork-labs/nfield-cli/internal/core/ports/driven"
	"github.com/fieldwork-labs/nfield-cli/internal/logger"
)

const (
	// signInPath is the unauthenticated sign-in endpoint.
	signInPath = "v1/SignIn"

	// HeaderAuthToken carries a rotated token on API responses. The
	// platform replaces tokens periodically; clients must adopt the
	// replacement or subsequent calls start failing with 401.
	HeaderAuthToken = "X-AuthenticationToken"

	// tokenType makes oauth2.Transport emit the platform's
	// "Authorization: Basic <token>" scheme.
	tokenType = "Basic"

	signInTimeout = 30 * time.Second
)

// Credentials hold the domain/username/password triple used to sign in.
type Credentials struct {
	Domain   string
	Username string
	Password string
}

// Validate checks that all three parts are present.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Domain) == "" ||
		strings.TrimSpace(c.Username) == "" ||
		c.Password == "" {
		return ErrNoCredentials
	}
	return nil
}

// Ensure TokenSource satisfies both the oauth2 contract and the
// core token provider port.
var (
	_ oauth2.TokenSource   = (*TokenSource)(nil)
	_ driven.TokenProvider = (*TokenSource)(nil)
)

// TokenSource signs in to the platform and hands out authentication
// tokens. It caches the current token, adopts rotated tokens observed
// on responses, and re-signs-in when the cache is empty.
type TokenSource struct {
	serverURL  string
	creds      Credentials
	httpClient *http.Client

	mu    sync.Mutex
	token string
}

// NewTokenSource creates a token source for the given server and
// credentials. httpClient may be nil, in which case a plain client
// with a sign-in timeout is used.
func NewTokenSource(serverURL string, creds Credentials, httpClient *http.Client) *TokenSource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: signInTimeout}
	}
	return &TokenSource{
		serverURL:  strings.TrimRight(serverURL, "/"),
		creds:      creds,
		httpClient: httpClient,
	}
}

// Token returns the current authentication token, signing in first if
// none is held. Satisfies oauth2.TokenSource.
func (ts *TokenSource) Token() (*oauth2.Token, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token == "" {
		ctx, cancel := context.WithTimeout(context.Background(), signInTimeout)
		defer cancel()
		if err := ts.signIn(ctx); err != nil {
			return nil, err
		}
	}

	return &oauth2.Token{
		AccessToken: ts.token,
		TokenType:   tokenType,
	}, nil
}

// GetToken returns a valid authentication token, signing in if needed.
// Satisfies driven.TokenProvider.
func (ts *TokenSource) GetToken(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token == "" {
		if err := ts.signIn(ctx); err != nil {
			return "", err
		}
	}
	return ts.token, nil
}

// Domain returns the platform domain the source signs in to.
func (ts *TokenSource) Domain() string {
	return ts.creds.Domain
}

// IsAuthenticated reports whether a token is currently held.
func (ts *TokenSource) IsAuthenticated() bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.token != ""
}

// Resume seeds the source with a previously saved token, skipping the
// initial sign-in until the platform rejects it.
func (ts *TokenSource) Resume(token string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.token = token
}

// adopt replaces the cached token with a rotated one from a response.
func (ts *TokenSource) adopt(token string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if token != "" && token != ts.token {
		logger.Debug("adopted rotated authentication token")
		ts.token = token
	}
}

// invalidate drops the cached token so the next call signs in again.
func (ts *TokenSource) invalidate() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.token = ""
}

// signIn performs POST v1/SignIn. Caller must hold ts.mu.
func (ts *TokenSource) signIn(ctx context.Context) error {
	if err := ts.creds.Validate(); err != nil {
		return err
	}

	logger.Debug("signing in to %s as %s/%s", ts.serverURL, ts.creds.Domain, ts.creds.Username)

	body, err := json.Marshal(map[string]string{
		"Domain":   ts.creds.Domain,
		"Username": ts.creds.Username,
		"Password": ts.creds.Password,
	})
	if err != nil {
		return fmt.Errorf("encode sign-in request: %w", err)
	}

	url := ts.serverURL + "/" + signInPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sign-in request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrSignInFailed
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(msg)),
			URL:        url,
		}
	}

	var result struct {
		AuthenticationToken string `json:"AuthenticationToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode sign-in response: %w", err)
	}
	if result.AuthenticationToken == "" {
		return fmt.Errorf("%w: empty authentication token", ErrSignInFailed)
	}

	ts.token = result.AuthenticationToken
	return nil
}

// rotatingTransport watches responses for rotated tokens and feeds them
// back into the token source. It wraps the oauth2 transport, so it sees
// the response after the Authorization header has been applied.
type rotatingTransport struct {
	next   http.RoundTripper
	source *TokenSource
}

func (t *rotatingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if token := resp.Header.Get(HeaderAuthToken); token != "" {
		t.source.adopt(token)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		// Stale token: drop it so the next request signs in again.
		t.source.invalidate()
	}
	return resp, nil
}
