package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/lorrc/jira-gateway-backend/internal/core/errors"
)

const apiPrefix = "/rest/api/3/"

// Config holds the connection settings for one Jira site.
type Config struct {
	BaseURL      string
	Email        string
	APIToken     string
	ProjectKey   string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

// Client is a secondary adapter speaking the Jira Cloud REST API v3. It
// implements ports.TicketSource and ports.ProjectDirectory. Requests
// authenticate with HTTP basic auth (account email + API token) and retry
// transient failures with a growing backoff.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Jira client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = 500 * time.Millisecond
	}

	return &Client{
		cfg:        cfg,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.With("component", "jira_client"),
	}
}

// Ping verifies credentials and connectivity against the "myself"
// endpoint.
func (c *Client) Ping(ctx context.Context) error {
	body, err := c.get(ctx, "myself", nil)
	if err != nil {
		return err
	}
	defer drain(body)
	return nil
}

// get performs a GET against one API endpoint, retrying rate-limit and
// server-side failures. The returned body is open; callers must close it.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) (io.ReadCloser, error) {
	reqURL := c.baseURL + apiPrefix + endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := c.cfg.RetryBackoff * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, err
		}
		req.SetBasicAuth(c.cfg.Email, c.cfg.APIToken)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
			c.logger.Warn("request failed", "endpoint", endpoint, "attempt", attempt+1, "error", err)
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return resp.Body, nil
		case resp.StatusCode == http.StatusNotFound:
			drain(resp.Body)
			return nil, fmt.Errorf("%w: %s", apperrors.ErrIssueNotFound, endpoint)
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			drain(resp.Body)
			return nil, fmt.Errorf("%w: status %d", apperrors.ErrUpstreamForbidden, resp.StatusCode)
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			drain(resp.Body)
			lastErr = fmt.Errorf("%w: status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
			c.logger.Warn("retryable status", "endpoint", endpoint, "status", resp.StatusCode, "attempt", attempt+1)
			continue
		default:
			drain(resp.Body)
			return nil, fmt.Errorf("%w: unexpected status %d from %s", apperrors.ErrUpstreamUnavailable, resp.StatusCode, endpoint)
		}
	}

	return nil, lastErr
}

// getJSON performs a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	body, err := c.get(ctx, endpoint, query)
	if err != nil {
		return err
	}
	defer drain(body)

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %v", apperrors.ErrUpstreamUnavailable, endpoint, err)
	}
	return nil
}

// drain discards any remaining body bytes so the connection can be reused.
func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
