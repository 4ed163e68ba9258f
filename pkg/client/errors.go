package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNotAuthenticated is returned when an operation needs a session token
// and none is stored.
var ErrNotAuthenticated = errors.New("not authenticated")

// APIError describes a non-2xx backend response. Message carries the
// backend's own message when the body had one, so callers can show it
// to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// IsNotFound reports whether err is an APIError with status 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an APIError with status 401
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// newAPIError builds an APIError from a response body, pulling the
// backend's message out of the {"message": "..."} envelope when present.
func newAPIError(statusCode int, body []byte) *APIError {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return &APIError{StatusCode: statusCode, Message: envelope.Message}
	}
	return &APIError{StatusCode: statusCode, Message: http.StatusText(statusCode)}
}
