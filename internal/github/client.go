package github

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	apierrors "github.com/amotarao/my-github-mcp-server/internal/errors"
	"github.com/amotarao/my-github-mcp-server/metrics"
)

const (
	// acceptHeader requests the versioned JSON media type.
	acceptHeader = "application/vnd.github.v3+json"
)

// Client provides access to the GitHub REST API. It performs no retries and
// no caching; every call maps to exactly one HTTP request whose outcome is
// classified into a typed error or a parsed payload.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string // process-wide fallback, read-only after construction
	userAgent  string
	logger     *slog.Logger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithToken sets the fallback token directly, overriding the configured one.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// NewClient creates a new GitHub API client from an explicit configuration.
func NewClient(cfg *Config, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: newHTTPClient(cfg.Timeout),
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		userAgent:  cfg.UserAgent,
		logger:     slog.Default(),
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// tokenContextKey carries the request-scoped token through the context.
type tokenContextKey struct{}

// WithRequestToken returns a context carrying a request-scoped access token.
// The HTTP transport middleware sets it from the X-GitHub-Token header.
func WithRequestToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// RequestToken returns the request-scoped token carried by ctx, or empty.
func RequestToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}

// resolveToken returns the credential for an outbound call: the request-scoped
// token when present and non-empty, else the fallback, else empty.
func (c *Client) resolveToken(ctx context.Context) string {
	if token, ok := ctx.Value(tokenContextKey{}).(string); ok && token != "" {
		return token
	}
	return c.token
}

// get performs a GET request against path and decodes the JSON response into
// out. The path must already carry any query string, fully percent-encoded.
// The action label groups the call for metrics.
func (c *Client) get(ctx context.Context, action, path string, out any) error {
	return c.do(ctx, action, http.MethodGet, path, nil, out)
}

// post serializes body as JSON and performs a POST request against path.
func (c *Client) post(ctx context.Context, action, path string, body, out any) error {
	return c.do(ctx, action, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, action, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apierrors.NewNetworkError("encode request", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return apierrors.NewNetworkError("build request", err)
	}

	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", c.userAgent)
	if token := c.resolveToken(ctx); token != "" {
		req.Header.Set("Authorization", "token "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start).Seconds()
	if err != nil {
		c.logger.Warn("GitHub API request failed", "method", method, "path", path, "error", err)
		metrics.RecordAPICall(action, duration, false, "network")
		return apierrors.NewNetworkError("request", err)
	}

	respBody, err := readAndClose(resp)
	if err != nil {
		metrics.RecordAPICall(action, duration, false, "network")
		return apierrors.NewNetworkError("read response", err)
	}

	observeRateLimit(resp)

	if resp.StatusCode == http.StatusNotFound {
		metrics.RecordAPICall(action, duration, false, "not_found")
		return apierrors.NewNotFoundError("", path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordAPICall(action, duration, false, strconv.Itoa(resp.StatusCode))
		return apierrors.NewHTTPError(resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			metrics.RecordAPICall(action, duration, false, "malformed_payload")
			return apierrors.NewNetworkError("parse response", err)
		}
	}

	metrics.RecordAPICall(action, duration, true, "")
	return nil
}

// observeRateLimit exports the remaining-quota header as a gauge. The client
// never acts on it; the remote API enforces its own limits.
func observeRateLimit(resp *http.Response) {
	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		if n, err := strconv.Atoi(remaining); err == nil {
			metrics.SetRateLimitRemaining(n)
		}
	}
}

// readAndClose reads the response body and closes it.
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// newHTTPClient creates an HTTP client with optimized transport settings.
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
