package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultMaxRetries is the default number of retry attempts.
const DefaultMaxRetries = 3

// DefaultRetryWait is the default initial wait between retries.
const DefaultRetryWait = 1 * time.Second

// Client provides common HTTP functionality for JSON API clients.
// The endpoints this project talks to are read-only, so only GET is
// exposed.
type Client struct {
	client      *http.Client
	baseURL     string
	serviceName string
	maxRetries  int
	retryWait   time.Duration

	// beforeRequest is called before each request (for auth headers, etc.)
	beforeRequest func(req *http.Request)
}

// ClientConfig holds configuration for Client.
type ClientConfig struct {
	Client        *http.Client
	BaseURL       string
	ServiceName   string
	MaxRetries    int
	RetryWait     time.Duration
	BeforeRequest func(req *http.Request)
}

// NewClient creates a new Client with the given configuration.
func NewClient(cfg ClientConfig) *Client {
	c := &Client{
		client:        cfg.Client,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		serviceName:   cfg.ServiceName,
		maxRetries:    cfg.MaxRetries,
		retryWait:     cfg.RetryWait,
		beforeRequest: cfg.BeforeRequest,
	}

	if c.client == nil {
		c.client = &http.Client{Timeout: DefaultTimeout}
	}
	if c.maxRetries <= 0 {
		c.maxRetries = DefaultMaxRetries
	}
	if c.retryWait <= 0 {
		c.retryWait = DefaultRetryWait
	}

	return c
}

// HTTPClient returns the underlying http.Client, for callers that need
// to fetch resources outside the API base URL with the same auth hook
// already applied via Request.
func (c *Client) HTTPClient() *http.Client {
	return c.client
}

// Request executes a GET request with retries for transient errors.
// path may be relative to the base URL or a full URL.
func (c *Client) Request(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		u = c.baseURL + "/" + strings.TrimLeft(path, "/")
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		req.Header.Set("Accept", "application/json")
		if id, err := nanoid.New(); err == nil {
			req.Header.Set("X-Request-Id", id)
		}

		// Apply auth headers via callback
		if c.beforeRequest != nil {
			c.beforeRequest(req)
		}

		slog.Debug("GET "+u,
			"service", c.serviceName,
			"request_id", req.Header.Get("X-Request-Id"),
			"attempt", attempt+1)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			if attempt < c.maxRetries-1 {
				wait := c.retryWait * time.Duration(1<<attempt) // Exponential backoff
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(wait):
					continue
				}
			}
			return nil, fmt.Errorf("%s request failed: %w", c.serviceName, err)
		}

		// Check for retryable status codes
		if (resp.StatusCode == 429 || resp.StatusCode >= 500) && attempt < c.maxRetries-1 {
			wait := c.getRetryWait(resp, attempt)
			resp.Body.Close()
			slog.Warn("retrying request",
				"service", c.serviceName,
				"status", resp.StatusCode,
				"wait", wait)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
				continue
			}
		}

		return resp, nil
	}

	return nil, lastErr
}

// Get performs a GET request and decodes the JSON response into result.
func (c *Client) Get(ctx context.Context, path string, query url.Values, result any) error {
	resp, err := c.Request(ctx, path, query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.handleResponse(resp, path, result)
}

// GetRaw performs a GET request and returns the raw response body.
func (c *Client) GetRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	resp, err := c.Request(ctx, path, query)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, c.parseError(resp, path)
	}

	return io.ReadAll(resp.Body)
}

// handleResponse checks status and decodes the response body.
func (c *Client) handleResponse(resp *http.Response, path string, result any) error {
	if resp.StatusCode >= 400 {
		return c.parseError(resp, path)
	}

	if result == nil {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", c.serviceName, err)
	}

	// Cookie-authenticated endpoints answer 200 with the login page
	// once the session dies. HTML where JSON was expected means an
	// expired session, not a decode failure.
	if looksLikeHTML(body) {
		return &SessionExpiredError{Service: c.serviceName, Endpoint: path}
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decode %s response from %s: %w", c.serviceName, path, err)
	}

	return nil
}

// parseError parses an error response into an APIError.
func (c *Client) parseError(resp *http.Response, path string) error {
	body, _ := io.ReadAll(resp.Body)

	apiErr := &APIError{
		Service:    c.serviceName,
		StatusCode: resp.StatusCode,
		Endpoint:   path,
		RequestID:  resp.Header.Get("X-Request-Id"),
	}

	// Try to parse error message from body
	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &errResp) == nil {
		if errResp.Message != "" {
			apiErr.Message = errResp.Message
		} else if errResp.Error != "" {
			apiErr.Message = errResp.Error
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}

// getRetryWait calculates the wait time for a retry.
func (c *Client) getRetryWait(resp *http.Response, attempt int) time.Duration {
	// Check for Retry-After header
	if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}

	// Exponential backoff
	return c.retryWait * time.Duration(1<<attempt)
}

func looksLikeHTML(body []byte) bool {
	head := body
	if len(head) > 256 {
		head = head[:256]
	}
	trimmed := strings.ToLower(strings.TrimLeft(string(head), " \t\r\n"))
	return strings.HasPrefix(trimmed, "<!doctype html") || strings.HasPrefix(trimmed, "<html")
}
