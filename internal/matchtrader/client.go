// Package matchtrader provides a client for the trading-account backend.
package matchtrader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second

	// NoDemoAccountsMessage is the backend's literal phrasing when the demo
	// account pool is exhausted. Callers match on it to switch the onboarding
	// flow into feedback collection.
	NoDemoAccountsMessage = "No demo accounts available"
)

// ErrAccountNotFound indicates no trading account exists for the email.
var ErrAccountNotFound = errors.New("account not found")

// APIError carries the backend's HTTP failure details.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("matchtrader %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// IsNoDemoAccounts reports whether the error message carries the backend's
// "pool exhausted" phrasing.
func IsNoDemoAccounts(err error) bool {
	return err != nil && strings.Contains(err.Error(), NoDemoAccountsMessage)
}

// Client talks to the MatchTrader proxy API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	limiter    *rate.Limiter
}

// Option configures the client.
type Option func(*Client)

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit caps outbound requests per second.
func WithRateLimit(requestsPerSecond int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithHTTPClient replaces the underlying HTTP client. Useful for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a MatchTrader client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetChallenges returns the full challenge catalog, hidden entries included.
func (c *Client) GetChallenges(ctx context.Context) ([]Challenge, error) {
	var challenges []Challenge
	if err := c.get(ctx, "/challenges", nil, &challenges); err != nil {
		return nil, err
	}
	return challenges, nil
}

// GetAccountByEmail looks up the trading account registered for the email.
// Returns ErrAccountNotFound when none exists.
func (c *Client) GetAccountByEmail(ctx context.Context, email string) (Account, error) {
	var account Account
	err := c.get(ctx, "/accounts", url.Values{"email": {email}}, &account)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, err
	}
	return account, nil
}

// GetCredentials fetches the login details for the email's trading account.
func (c *Client) GetCredentials(ctx context.Context, email string) (Credentials, error) {
	var creds Credentials
	if err := c.get(ctx, "/credentials", url.Values{"email": {email}}, &creds); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

// CreateDemoAccount asks the backend to provision a demo trading account.
// A declined request comes back with Success=false and the backend's message;
// transport or server failures are returned as errors.
func (c *Client) CreateDemoAccount(ctx context.Context, input CreateDemoAccountInput) (CreateDemoAccountResult, error) {
	var result CreateDemoAccountResult
	if err := c.post(ctx, "/demo-accounts", input, &result); err != nil {
		return CreateDemoAccountResult{}, err
	}
	return result, nil
}

// CheckAdmin reports whether the email belongs to a platform administrator.
func (c *Client) CheckAdmin(ctx context.Context, email string) (bool, error) {
	var result struct {
		IsAdmin bool `json:"isAdmin"`
	}
	if err := c.get(ctx, "/admin/check", url.Values{"email": {email}}, &result); err != nil {
		return false, err
	}
	return result.IsAdmin, nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	return c.do(req, endpoint, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, endpoint, out)
}

func (c *Client) do(req *http.Request, endpoint string, out any) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("matchtrader %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("matchtrader request",
		slog.String("endpoint", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("matchtrader %s: read body: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw),
			Endpoint:   endpoint,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("matchtrader %s: decode response: %w", endpoint, err)
	}
	return nil
}

// errorMessage pulls a human-readable message out of an error payload, falling
// back to the raw body so backend wording always reaches the user verbatim.
func errorMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
