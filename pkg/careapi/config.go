package careapi

import (
	"maps"
	"strings"
	"time"

	"github.com/fivetwenty-io/careapi/internal/constants"
)

// Config represents client configuration for building a careapi.Client.
//
// A Config is treated as immutable once a client has been built from it,
// with the single exception of the credential, which the client holds in a
// shared cell and replaces through Client.SetAPIKey. Every endpoint group
// built by the same client observes the replacement on its next request.
//
// Zero-valued fields are filled with defaults when a client is constructed:
// BaseURL falls back to the platform endpoint, Timeout to 30 seconds.
type Config struct {
	// BaseURL is the absolute API endpoint, without trailing slash or
	// version suffix (e.g., "https://api.example.com").
	BaseURL string

	// APIKey is the bearer credential. Empty means no Authorization header
	// is sent; the server's 401 then surfaces as ErrAuthenticationFailed.
	APIKey string

	// Timeout bounds both connection setup and the whole request/response
	// exchange.
	Timeout time.Duration

	// Headers are sent with every request and override the Content-Type and
	// Authorization headers set by the client on conflict.
	Headers map[string]string
}

// ConfigOption configures a Config built by NewConfig.
type ConfigOption func(*Config)

// WithBaseURL sets the API endpoint.
func WithBaseURL(baseURL string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithAPIKey sets the bearer credential.
func WithAPIKey(apiKey string) ConfigOption {
	return func(c *Config) {
		c.APIKey = apiKey
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithHeader adds a single extra header.
func WithHeader(name, value string) ConfigOption {
	return func(c *Config) {
		if c.Headers == nil {
			c.Headers = make(map[string]string)
		}

		c.Headers[name] = value
	}
}

// WithHeaders adds every header in headers.
func WithHeaders(headers map[string]string) ConfigOption {
	return func(c *Config) {
		if c.Headers == nil {
			c.Headers = make(map[string]string, len(headers))
		}

		maps.Copy(c.Headers, headers)
	}
}

// DefaultConfig returns the default configuration: platform endpoint, no
// credential, 30 second timeout and no extra headers.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: constants.DefaultBaseURL,
		Timeout: constants.DefaultHTTPTimeout,
		Headers: map[string]string{},
	}
}

// NewConfig returns DefaultConfig with opts applied. It never fails.
func NewConfig(opts ...ConfigOption) *Config {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	return config
}

// Normalized returns a copy of c with defaults applied to zero-valued
// fields and the trailing slash trimmed from BaseURL. A nil receiver yields
// DefaultConfig.
func (c *Config) Normalized() Config {
	if c == nil {
		return *DefaultConfig()
	}

	out := c.Clone()

	if out.BaseURL == "" {
		out.BaseURL = constants.DefaultBaseURL
	}

	out.BaseURL = strings.TrimSuffix(out.BaseURL, "/")

	if out.Timeout <= 0 {
		out.Timeout = constants.DefaultHTTPTimeout
	}

	return out
}

// Clone returns a deep copy of c.
func (c *Config) Clone() Config {
	out := *c

	out.Headers = make(map[string]string, len(c.Headers))
	maps.Copy(out.Headers, c.Headers)

	return out
}

// HasAPIKey reports whether a credential is set.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}
