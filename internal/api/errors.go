package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError means the server answered with a non-2xx status. Detail carries
// the server-provided message verbatim.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api: server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Detail, e.StatusCode)
}

// ConnError means the request went out but no usable response came back
// (network failure or timeout).
type ConnError struct {
	Err error
}

func (e *ConnError) Error() string { return "api: no response from server: " + e.Err.Error() }
func (e *ConnError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool     { return hasStatus(err, http.StatusNotFound) }
func IsUnauthorized(err error) bool { return hasStatus(err, http.StatusUnauthorized) }

// IsConflict reports a validation/uniqueness rejection (duplicate code,
// item_number, order_number or an invalid transition).
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusBadRequest) || hasStatus(err, http.StatusConflict)
}

func IsConnError(err error) bool {
	var ce *ConnError
	return errors.As(err, &ce)
}

func hasStatus(err error, code int) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == code
}
