package gateway

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError carries a rejection the identity service explained itself, e.g.
// "Email already registered" or "Invalid or expired token".
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("identity service returned status %d", e.StatusCode)
}

// Unwrap lets callers match authentication rejections with
// errors.Is(err, ErrUnauthorized) regardless of the concrete status code.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 401, 403:
		return ErrUnauthorized
	}
	return nil
}

// Detail returns the server-supplied message behind err, or "" if err does
// not carry one.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
