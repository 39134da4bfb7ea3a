// Package nbp is the HTTP gateway to the National Bank of Poland web API.
//
// Callers pass relative paths (see paths.go); the client adds the base URL
// and format suffix, throttles requests and decodes the JSON answer.
package nbp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/guttosm/nbpstat/internal/logger"
	"github.com/guttosm/nbpstat/internal/metrics"
)

const (
	DefaultBaseURL = "http://api.nbp.pl/api/"
	DefaultSuffix  = "/?format=json"
	defaultTimeout = 15 * time.Second
)

// Fetcher fetches one relative path and decodes the JSON answer into out.
// out decides the expected shape: a pointer to a struct for object
// endpoints, a pointer to a slice for array endpoints.
type Fetcher interface {
	Fetch(ctx context.Context, path string, out any) error
}

// Config holds the client settings.
type Config struct {
	BaseURL string
	Suffix  string
	Timeout time.Duration
	// RateLimit is the maximum number of requests per second; 0 disables
	// throttling.
	RateLimit float64
}

// Client implements Fetcher over HTTP.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	suffix     string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient builds a client from cfg, filling unset fields with defaults.
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Suffix == "" {
		cfg.Suffix = DefaultSuffix
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/") + "/",
		suffix:     cfg.Suffix,
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the absolute URL for a relative API path.
func (c *Client) URL(path string) string {
	return c.baseURL + strings.Trim(path, "/") + c.suffix
}

// Fetch implements Fetcher.
func (c *Client) Fetch(ctx context.Context, path string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &FetchError{Kind: KindTransport, Path: path, Message: "rate limit wait failed", Err: err}
		}
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(path), nil)
	if err != nil {
		return &FetchError{Kind: KindTransport, Path: path, Message: "failed to create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(path, 0, metrics.OutcomeError, start)
		return &FetchError{Kind: KindTransport, Path: path, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(path, resp.StatusCode, metrics.OutcomeError, start)
		return &FetchError{Kind: KindTransport, StatusCode: resp.StatusCode, Path: path, Message: "failed to read response body", Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound:
		c.observe(path, resp.StatusCode, metrics.OutcomeNotFound, start)
		return &FetchError{Kind: KindNotFoundOrInvalid, StatusCode: resp.StatusCode, Path: path, Message: reasonPhrase(resp)}
	case resp.StatusCode != http.StatusOK:
		c.observe(path, resp.StatusCode, metrics.OutcomeError, start)
		return &FetchError{Kind: KindTransport, StatusCode: resp.StatusCode, Path: path, Message: fmt.Sprintf("unexpected status %s", resp.Status)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.observe(path, resp.StatusCode, metrics.OutcomeError, start)
		return &FetchError{Kind: KindTransport, StatusCode: resp.StatusCode, Path: path, Message: "failed to decode response", Err: err}
	}
	c.observe(path, resp.StatusCode, metrics.OutcomeOK, start)
	return nil
}

func (c *Client) observe(path string, status int, outcome string, start time.Time) {
	elapsed := time.Since(start)
	metrics.ObserveClientRequest(outcome, elapsed)
	logger.L().Debug().
		Str("path", path).
		Int("status", status).
		Str("outcome", outcome).
		Dur("elapsed", elapsed).
		Msg("nbp request")
}

// reasonPhrase extracts the server's reason phrase from the status line
// ("404 Not Found - Brak danych" -> "Not Found - Brak danych").
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
