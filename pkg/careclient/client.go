package careclient

import (
	"errors"
	"net/http"
	"sync"

	"github.com/fivetwenty-io/careapi/internal/client"
	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

// Static errors for err113 compliance.
var (
	ErrAlreadyInitialized = errors.New("default client already initialized")
	ErrNotInitialized     = errors.New("default client not initialized; call careclient.Init first")
)

// Option configures transport settings that are not part of careapi.Config.
type Option func(*client.Options)

// WithLogger sets the logger used for failed requests and, with WithDebug,
// for every request and response.
func WithLogger(logger careapi.Logger) Option {
	return func(o *client.Options) {
		o.Logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(o *client.Options) {
		o.Debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *client.Options) {
		o.UserAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying *http.Client, e.g. for custom TLS or
// tests. Its Timeout is set from the config when zero.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *client.Options) {
		o.HTTPClient = httpClient
	}
}

// New creates a healthcare platform API client. A nil config means
// careapi.DefaultConfig. Construction never fails and performs no I/O.
func New(config *careapi.Config, opts ...Option) careapi.Client {
	var options client.Options
	for _, opt := range opts {
		opt(&options)
	}

	return client.New(config, options)
}

// NewWithAPIKey creates a client for baseURL using apiKey as the bearer
// credential.
func NewWithAPIKey(baseURL, apiKey string, opts ...Option) careapi.Client {
	return New(careapi.NewConfig(careapi.WithBaseURL(baseURL), careapi.WithAPIKey(apiKey)), opts...)
}

var (
	defaultMu     sync.Mutex
	defaultClient careapi.Client
)

// Init builds the process-wide default client. It may be called once;
// later calls return ErrAlreadyInitialized and leave the first client in
// place.
func Init(config *careapi.Config, opts ...Option) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultClient != nil {
		return ErrAlreadyInitialized
	}

	defaultClient = New(config, opts...)

	return nil
}

// Default returns the client built by Init. It is never constructed
// implicitly.
func Default() (careapi.Client, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultClient == nil {
		return nil, ErrNotInitialized
	}

	return defaultClient, nil
}
