package nfield

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
	"github.com/fieldwork-labs/nfield-cli/internal/core/ports/driven"
	"github.com/fieldwork-labs/nfield-cli/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// HeaderRequestID carries a client-generated correlation ID so
	// failed calls can be traced in the platform's logs.
	HeaderRequestID = "X-Request-ID"
)

// Client is a connection to one platform server. It owns the
// authenticated HTTP client and hands out the typed service handles.
type Client struct {
	serverURL   string
	source      *TokenSource
	rateLimiter *RateLimiter
	httpClient  *http.Client

	timeout     time.Duration
	requestRate float64
	savedToken  string
}

// Option customises a Client.
type Option func(*Client)

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRequestRate sets the proactive throttle in requests per second.
func WithRequestRate(rps float64) Option {
	return func(c *Client) { c.requestRate = rps }
}

// WithSavedToken seeds the connection with a previously persisted
// authentication token, avoiding a fresh sign-in until it goes stale.
func WithSavedToken(token string) Option {
	return func(c *Client) { c.savedToken = token }
}

// New creates a connection bound to the given server URL. The sign-in
// itself happens lazily on the first request, or eagerly via SignIn.
func New(serverURL string, creds Credentials, opts ...Option) (*Client, error) {
	if strings.TrimSpace(serverURL) == "" {
		return nil, ErrEmptyServerURL
	}

	c := &Client{
		serverURL:   strings.TrimRight(serverURL, "/"),
		timeout:     DefaultTimeout,
		requestRate: DefaultRequestRate,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.source = NewTokenSource(c.serverURL, creds, nil)
	if c.savedToken != "" {
		c.source.Resume(c.savedToken)
	}
	c.rateLimiter = NewRateLimiter(c.requestRate)

	// oauth2.Transport applies the Authorization header from the token
	// source; rotatingTransport watches responses for replacement tokens.
	c.httpClient = &http.Client{
		Timeout: c.timeout,
		Transport: &rotatingTransport{
			next:   &oauth2.Transport{Source: c.source},
			source: c.source,
		},
	}

	return c, nil
}

// SignIn performs the sign-in eagerly, validating the credentials.
func (c *Client) SignIn(ctx context.Context) error {
	_, err := c.source.GetToken(ctx)
	if err != nil {
		return err
	}
	return nil
}

// Token returns the current authentication token so callers can
// persist it across invocations.
func (c *Client) Token(ctx context.Context) (string, error) {
	return c.source.GetToken(ctx)
}

// TokenProvider exposes the connection's token source as the core port.
func (c *Client) TokenProvider() driven.TokenProvider {
	return c.source
}

// ServerURL returns the server this connection is bound to.
func (c *Client) ServerURL() string {
	return c.serverURL
}

// Typed service handles. Each is a cheap stateless view over the
// connection, so callers may fetch them as often as they like.

// Interviewers returns the interviewer service handle.
func (c *Client) Interviewers() driven.InterviewersService {
	return &interviewersService{client: c}
}

// Surveys returns the survey service handle.
func (c *Client) Surveys() driven.SurveysService {
	return &surveysService{client: c}
}

// SamplingPoints returns the sampling point service handle.
func (c *Client) SamplingPoints() driven.SamplingPointsService {
	return &samplingPointsService{client: c}
}

// SurveyScript returns the survey script service handle.
func (c *Client) SurveyScript() driven.SurveyScriptService {
	return &surveyScriptService{client: c}
}

// SurveyData returns the data download service handle.
func (c *Client) SurveyData() driven.SurveyDataService {
	return &surveyDataService{client: c}
}

// BackgroundTasks returns the background task service handle.
func (c *Client) BackgroundTasks() driven.BackgroundTasksService {
	return &backgroundTasksService{client: c}
}

// do performs one API call: rate-limit wait, request build, status
// mapping, JSON decode into out (which may be nil for empty responses).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	url := c.serverURL + "/" + strings.TrimLeft(path, "/")

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("%s %s", method, url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if rlErr := c.rateLimiter.CheckRateLimit(resp); rlErr != nil {
		return rlErr
	}

	if resp.StatusCode >= 400 {
		return c.statusError(resp, url)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError maps an error response onto the domain sentinels where
// one applies, keeping the APIError detail in the message.
func (c *Client) statusError(resp *http.Response, url string) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(msg)),
		URL:        url,
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %v", domain.ErrNotFound, apiErr)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %v", domain.ErrAuthInvalid, apiErr)
	case http.StatusConflict:
		return fmt.Errorf("%w: %v", domain.ErrAlreadyExists, apiErr)
	default:
		return apiErr
	}
}
