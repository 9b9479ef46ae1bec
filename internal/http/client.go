package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net"
	"net/http"
	"net/url"
	"reflect"
	"slices"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/careapi/internal/constants"
	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes a single API call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
}

// Response is a classified 2xx response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the shared request pipeline. One Client backs every endpoint
// group of a facade; its credential cell is the only state mutated after
// construction.
type Client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	timeout    time.Duration
	headers    map[string]string
	apiKey     atomic.Pointer[string]
	userAgent  string
	logger     Logger
	debug      bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying *http.Client, e.g. for custom TLS.
// Its Timeout is overwritten with the configured timeout when unset.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// NewClient creates the transport from config. A nil config means defaults.
func NewClient(config *careapi.Config, opts ...Option) *Client {
	normalized := config.Normalized()

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil
	bindDialTimeout(retryClient.HTTPClient, normalized.Timeout)

	client := &Client{
		httpClient: retryClient,
		baseURL:    normalized.BaseURL,
		timeout:    normalized.Timeout,
		headers:    normalized.Headers,
	}

	client.SetAPIKey(normalized.APIKey)

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient.HTTPClient.Timeout == 0 {
		client.httpClient.HTTPClient.Timeout = client.timeout
	}

	client.installLogHooks()

	return client
}

// bindDialTimeout bounds connection setup of the default pooled client by
// the same timeout that bounds the whole exchange.
func bindDialTimeout(httpClient *http.Client, timeout time.Duration) {
	transport, ok := httpClient.Transport.(*http.Transport)
	if !ok {
		return
	}

	transport.DialContext = (&net.Dialer{
		Timeout:   timeout,
		KeepAlive: constants.DefaultHTTPTimeout,
	}).DialContext
	transport.TLSHandshakeTimeout = timeout
}

func (c *Client) installLogHooks() {
	if c.logger == nil || !c.debug {
		return
	}

	c.httpClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, _ int) {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL.String(),
		})
	}

	c.httpClient.ResponseLogHook = func(_ retryablehttp.Logger, resp *http.Response) {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      resp.Request.Method,
			"url":         resp.Request.URL.String(),
			"status_code": resp.StatusCode,
		})
	}
}

// SetAPIKey replaces the credential. An empty key removes it. Calls already
// past header assembly keep the key they read.
func (c *Client) SetAPIKey(apiKey string) {
	c.apiKey.Store(&apiKey)
}

// APIKey returns the current credential.
func (c *Client) APIKey() string {
	if key := c.apiKey.Load(); key != nil {
		return *key
	}

	return ""
}

// Config returns a snapshot of the configuration.
func (c *Client) Config() careapi.Config {
	return careapi.Config{
		BaseURL: c.baseURL,
		APIKey:  c.APIKey(),
		Timeout: c.timeout,
		Headers: maps.Clone(c.headers),
	}
}

// Do runs the pipeline for req and returns the raw 2xx response. Every
// failure is a *careapi.Error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	requestURL, err := c.buildURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	header := c.buildHeaders()

	var body interface{}
	if hasBody(req.Body) {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, careapi.NewEncodingError(err)
		}

		body = data
	}

	retryReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, requestURL, body)
	if err != nil {
		// The URL was already parsed by buildURL, so what remains is a nil
		// context or an unusable method: the request never leaves.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, careapi.NewInvalidURLError()
		}

		return nil, careapi.NewNetworkError(err)
	}

	retryReq.Header = header

	resp, err := c.httpClient.Do(retryReq)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}

		return nil, classifyTransportError(err)
	}

	if resp == nil {
		return nil, careapi.NewInvalidResponseError(nil)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, careapi.NewTimeoutError(err)
		}

		return nil, careapi.NewInvalidResponseError(fmt.Errorf("reading response body: %w", err))
	}

	err = classifyStatus(resp.StatusCode, data)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("API request failed", map[string]interface{}{
				"method":      req.Method,
				"path":        req.Path,
				"status_code": resp.StatusCode,
			})
		}

		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       data,
	}, nil
}

// Exec runs the pipeline for an endpoint whose result shape is empty. The
// response body of a successful call is ignored.
func (c *Client) Exec(ctx context.Context, req *Request) error {
	_, err := c.Do(ctx, req)

	return err
}

// hasBody reports whether body carries a value. A typed nil pointer, map or
// slice counts as no body.
func hasBody(body interface{}) bool {
	if body == nil {
		return false
	}

	value := reflect.ValueOf(body)
	switch value.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return !value.IsNil()
	default:
		return true
	}
}

func (c *Client) buildURL(path string, query url.Values) (string, error) {
	parsed, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", careapi.NewInvalidURLError()
	}

	if len(query) > 0 {
		encoded := query.Encode()
		if parsed.RawQuery != "" {
			encoded = parsed.RawQuery + "&" + encoded
		}

		parsed.RawQuery = encoded
	}

	return parsed.String(), nil
}

// buildHeaders applies content type, then authorization, then the extra
// headers, so extra headers win on conflict.
func (c *Client) buildHeaders() http.Header {
	header := make(http.Header)
	header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	header.Set(constants.HeaderAccept, constants.ContentTypeJSON)

	if c.userAgent != "" {
		header.Set(constants.HeaderUserAgent, c.userAgent)
	}

	if apiKey := c.APIKey(); apiKey != "" {
		header.Set(constants.HeaderAuthorization, constants.BearerPrefix+apiKey)
	}

	for _, name := range slices.Sorted(maps.Keys(c.headers)) {
		header.Set(name, c.headers[name])
	}

	return header
}

// errorBody is the server's error shape.
type errorBody struct {
	Message *string `json:"message"`
}

func classifyStatus(statusCode int, body []byte) error {
	if statusCode == constants.HTTPStatusUnauthorized {
		return careapi.NewAuthenticationFailedError()
	}

	if statusCode >= constants.HTTPStatusOK && statusCode <= constants.HTTPStatusSuccessMax {
		return nil
	}

	var parsed errorBody

	err := json.Unmarshal(body, &parsed)
	if err != nil {
		return careapi.NewHTTPError(statusCode, nil)
	}

	return careapi.NewHTTPError(statusCode, parsed.Message)
}

func classifyTransportError(err error) error {
	if isTimeout(err) {
		return careapi.NewTimeoutError(err)
	}

	return careapi.NewNetworkError(err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}

func neverRetry(_ context.Context, _ *http.Response, _ error) (bool, error) {
	return false, nil
}
