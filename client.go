package capedge

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/randalmurphal/capedge/auth"
	"github.com/randalmurphal/capedge/config"
	capehttp "github.com/randalmurphal/capedge/http"
)

// DefaultBaseURL is the CapEdge API root.
const DefaultBaseURL = config.DefaultBaseURL

const serviceName = "capedge"

// userAgent mirrors a desktop browser. The site serves its login page
// to obvious non-browser agents even with valid cookies.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// Config holds configuration for Client.
type Config struct {
	// Cookies is the browser session used for authentication. Required.
	Cookies *auth.CookieSet

	// BaseURL overrides the API root. Defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *nethttp.Client

	// MaxRetries and RetryWait tune transient-failure retries.
	MaxRetries int
	RetryWait  time.Duration
}

// Client provides access to the CapEdge API. All calls are stateless;
// the only carried state is the cookie set attached to each request.
type Client struct {
	api     *capehttp.Client
	cookies *auth.CookieSet

	// siteURL is the site root (base URL minus the /v1/api suffix),
	// used for endpoints that live outside the API prefix.
	siteURL string
}

// New creates a client from an explicit Config.
func New(cfg Config) (*Client, error) {
	if cfg.Cookies == nil || cfg.Cookies.Len() == 0 {
		return nil, fmt.Errorf("capedge: session cookies are required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		cookies: cfg.Cookies,
		siteURL: siteRoot(baseURL),
	}
	c.api = capehttp.NewClient(capehttp.ClientConfig{
		Client:      cfg.HTTPClient,
		BaseURL:     baseURL,
		ServiceName: serviceName,
		MaxRetries:  cfg.MaxRetries,
		RetryWait:   cfg.RetryWait,
		BeforeRequest: func(req *nethttp.Request) {
			req.Header.Set("Cookie", c.cookies.Header())
			req.Header.Set("User-Agent", userAgent)
		},
	})

	c.logSession()
	return c, nil
}

// FromCookieString creates a client from a Cookie header value as
// copied from browser DevTools (e.g., "name1=value1; name2=value2").
func FromCookieString(cookieString string) (*Client, error) {
	cookies, err := auth.ParseCookieString(cookieString)
	if err != nil {
		return nil, fmt.Errorf("capedge: parse cookie string: %w", err)
	}
	return New(Config{Cookies: cookies})
}

// FromConfig creates a client from resolved configuration.
func FromConfig(cfg *config.Config) (*Client, error) {
	cookies, err := auth.ParseCookieString(cfg.Cookie)
	if err != nil {
		return nil, fmt.Errorf("capedge: parse configured cookie: %w", err)
	}
	return New(Config{
		Cookies:    cookies,
		BaseURL:    cfg.BaseURL,
		HTTPClient: &nethttp.Client{Timeout: cfg.Timeout},
	})
}

// Cookies returns the session cookie set the client authenticates with.
func (c *Client) Cookies() *auth.CookieSet {
	return c.cookies
}

// logSession records which session we operate under, without ever
// logging the credential itself.
func (c *Client) logSession() {
	attrs := []any{"cookie_fingerprint", c.cookies.Fingerprint()}

	info, err := auth.InspectSession(c.cookies)
	if err != nil {
		slog.Debug("capedge session token not inspectable", append(attrs, "reason", err)...)
		return
	}
	if !info.ExpiresAt.IsZero() {
		attrs = append(attrs, "session_expires", info.ExpiresAt)
	}
	if info.Expired(time.Now()) {
		slog.Warn("capedge session token already expired", attrs...)
		return
	}
	slog.Debug("capedge client ready", attrs...)
}

// siteRoot strips the API prefix from the base URL, leaving the site
// root for endpoints outside /v1/api.
func siteRoot(baseURL string) string {
	root := strings.TrimRight(baseURL, "/")
	root = strings.TrimSuffix(root, "/api")
	root = strings.TrimSuffix(root, "/v1")
	return root
}
