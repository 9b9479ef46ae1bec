package careapi

import (
	"errors"
	"fmt"

	"github.com/fivetwenty-io/careapi/internal/constants"
)

// ErrorKind classifies client failures. The set is closed.
type ErrorKind int

const (
	// KindInvalidURL: base URL, path and query do not form a valid URL.
	KindInvalidURL ErrorKind = iota + 1
	// KindNoData: an empty body where data was expected. Reserved; the
	// transport never raises it.
	KindNoData
	// KindDecoding: the response body did not match the expected shape.
	KindDecoding
	// KindEncoding: the request body could not be serialized.
	KindEncoding
	// KindNetwork: a transport-level failure other than a timeout.
	KindNetwork
	// KindHTTP: a non-2xx, non-401 response.
	KindHTTP
	// KindAuthenticationFailed: the server answered 401.
	KindAuthenticationFailed
	// KindTimeout: the call exceeded the configured timeout or deadline.
	KindTimeout
	// KindInvalidResponse: the response could not be read as HTTP.
	KindInvalidResponse
	// KindMissingAPIKey: a credential was required but none is set.
	// Reserved for callers; the transport never raises it.
	KindMissingAPIKey
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalidURL"
	case KindNoData:
		return "noData"
	case KindDecoding:
		return "decodingError"
	case KindEncoding:
		return "encodingError"
	case KindNetwork:
		return "networkError"
	case KindHTTP:
		return "httpError"
	case KindAuthenticationFailed:
		return "authenticationFailed"
	case KindTimeout:
		return "timeout"
	case KindInvalidResponse:
		return "invalidResponse"
	case KindMissingAPIKey:
		return "missingAPIKey"
	default:
		return "unknown"
	}
}

// Error is a classified client failure.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// StatusCode is set for KindHTTP.
	StatusCode int
	// Message is the server-supplied message for KindHTTP, nil when the
	// error body did not carry one.
	Message *string
	// Err is the underlying cause for KindDecoding, KindEncoding,
	// KindNetwork, KindTimeout and KindInvalidResponse.
	Err error
}

// Error implements the error interface with a description suitable for
// direct display.
func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidURL:
		return "invalid URL"
	case KindNoData:
		return "no data received from server"
	case KindDecoding:
		return "failed to decode response: " + causeText(e.Err)
	case KindEncoding:
		return "failed to encode request: " + causeText(e.Err)
	case KindNetwork:
		return "network error: " + causeText(e.Err)
	case KindHTTP:
		message := "unknown error"
		if e.Message != nil {
			message = *e.Message
		}

		return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, message)
	case KindAuthenticationFailed:
		return "authentication failed"
	case KindTimeout:
		return "request timed out"
	case KindInvalidResponse:
		if e.Err != nil {
			return "invalid response from server: " + e.Err.Error()
		}

		return "invalid response from server"
	case KindMissingAPIKey:
		return "API key is missing"
	default:
		return "unknown error"
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	sentinel, ok := target.(*Error)
	if !ok {
		return false
	}

	return sentinel.isSentinel() && sentinel.Kind == e.Kind
}

func (e *Error) isSentinel() bool {
	return e.StatusCode == 0 && e.Message == nil && e.Err == nil
}

func causeText(err error) string {
	if err == nil {
		return "unknown cause"
	}

	return err.Error()
}

// Sentinels matching any *Error of the same kind via errors.Is.
var (
	ErrInvalidURL           = &Error{Kind: KindInvalidURL}
	ErrNoData               = &Error{Kind: KindNoData}
	ErrDecoding             = &Error{Kind: KindDecoding}
	ErrEncoding             = &Error{Kind: KindEncoding}
	ErrNetwork              = &Error{Kind: KindNetwork}
	ErrHTTP                 = &Error{Kind: KindHTTP}
	ErrAuthenticationFailed = &Error{Kind: KindAuthenticationFailed}
	ErrTimeout              = &Error{Kind: KindTimeout}
	ErrInvalidResponse      = &Error{Kind: KindInvalidResponse}
	ErrMissingAPIKey        = &Error{Kind: KindMissingAPIKey}
)

// NewInvalidURLError reports a URL that could not be built.
func NewInvalidURLError() *Error {
	return &Error{Kind: KindInvalidURL}
}

// NewDecodingError wraps a deserialization failure.
func NewDecodingError(err error) *Error {
	return &Error{Kind: KindDecoding, Err: err}
}

// NewEncodingError wraps a serialization failure.
func NewEncodingError(err error) *Error {
	return &Error{Kind: KindEncoding, Err: err}
}

// NewNetworkError wraps a transport-level failure.
func NewNetworkError(err error) *Error {
	return &Error{Kind: KindNetwork, Err: err}
}

// NewTimeoutError wraps a failure caused by the timeout or a deadline.
func NewTimeoutError(err error) *Error {
	return &Error{Kind: KindTimeout, Err: err}
}

// NewHTTPError reports a non-2xx response. message may be nil.
func NewHTTPError(statusCode int, message *string) *Error {
	return &Error{Kind: KindHTTP, StatusCode: statusCode, Message: message}
}

// NewAuthenticationFailedError reports a 401 response.
func NewAuthenticationFailedError() *Error {
	return &Error{Kind: KindAuthenticationFailed}
}

// NewInvalidResponseError reports a response that could not be read.
func NewInvalidResponseError(err error) *Error {
	return &Error{Kind: KindInvalidResponse, Err: err}
}

// AsError extracts the *Error from err's chain.
func AsError(err error) (*Error, bool) {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsAuthenticationFailed checks if the error is a 401 failure. Callers are
// expected to re-authenticate and set a fresh key.
func IsAuthenticationFailed(err error) bool {
	return errors.Is(err, ErrAuthenticationFailed)
}

// IsTimeout checks if the error is a timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsNetworkError checks if the error is a transport-level failure.
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsNotFound checks if the error is an HTTP 404.
func IsNotFound(err error) bool {
	return hasStatus(err, constants.HTTPStatusNotFound)
}

// IsForbidden checks if the error is an HTTP 403.
func IsForbidden(err error) bool {
	return hasStatus(err, constants.HTTPStatusForbidden)
}

// IsRetryable reports whether the caller may reasonably retry. The client
// itself never retries.
func IsRetryable(err error) bool {
	return IsTimeout(err) || IsNetworkError(err)
}

func hasStatus(err error, statusCode int) bool {
	apiErr, ok := AsError(err)

	return ok && apiErr.Kind == KindHTTP && apiErr.StatusCode == statusCode
}
