package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Common static errors that can be wrapped with context.
var (
	ErrMissingPathParam = errors.New("missing path parameter")
	ErrMissingEnv       = errors.New("missing environment variable")
	ErrInvalidConfig    = errors.New("invalid client configuration")
	ErrConfigRequired   = errors.New("config is required")
)

// ServerError is returned for a non-2xx response. The body is kept exactly as
// received and is never parsed.
type ServerError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), string(e.Body))
}

// Text returns the raw body as a string.
func (e *ServerError) Text() string {
	return string(e.Body)
}

// UnexpectedResponseError is returned for a non-2xx response by endpoints
// that keep the response handle rather than its body text.
type UnexpectedResponseError struct {
	StatusCode int
	Header     http.Header
	Response   *http.Response
}

// Error implements the error interface.
func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected response: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// DecodeError is returned when a 2xx body does not match the expected shape.
// Line and Column are 1-based and point at the offending byte of Body.
type DecodeError struct {
	StatusCode int
	Body       string
	Offset     int64
	Line       int
	Column     int
	Err        error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("decoding response (status %d) at line %d, column %d: %v", e.StatusCode, e.Line, e.Column, e.Err)
	}

	return fmt.Sprintf("decoding response (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError is returned when no response was received, after the retry
// policy gave up.
type TransportError struct {
	Method   string
	URL      string
	Attempts int
	Err      error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s failed after %d attempt(s): %v", e.Method, e.URL, e.Attempts, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, if the error was produced
// from a response.
func StatusCode(err error) (int, bool) {
	serverErr := &ServerError{}
	if errors.As(err, &serverErr) {
		return serverErr.StatusCode, true
	}

	unexpectedErr := &UnexpectedResponseError{}
	if errors.As(err, &unexpectedErr) {
		return unexpectedErr.StatusCode, true
	}

	decodeErr := &DecodeError{}
	if errors.As(err, &decodeErr) {
		return decodeErr.StatusCode, true
	}

	return 0, false
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	status, ok := StatusCode(err)

	return ok && status == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401 response.
func IsUnauthorized(err error) bool {
	status, ok := StatusCode(err)

	return ok && status == http.StatusUnauthorized
}

// IsRateLimited checks if the error is a 429 response.
func IsRateLimited(err error) bool {
	status, ok := StatusCode(err)

	return ok && status == http.StatusTooManyRequests
}

// IsTransportError checks if no response was ever received.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}
