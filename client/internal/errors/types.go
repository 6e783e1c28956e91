// Package errors defines the error returned for non-2xx API responses.
package errors

import (
	"fmt"
	"net/http"
)

// ErrorCategory tells a caller whether repeating the request may help.
// The client itself never retries.
type ErrorCategory int

const (
	// Recoverable failures may succeed if the caller tries again:
	// 408, 429, 5xx.
	Recoverable ErrorCategory = iota

	// Irrecoverable failures need a different request: 400, 401, 403, 404, ...
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// APIError is a non-2xx response.
//
// Body holds the tolerantly parsed payload: nil for an empty body, the
// decoded JSON value, or the raw text when the body was not JSON.
type APIError struct {
	StatusCode int
	Message    string
	Body       any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Category classifies the status code.
func (e *APIError) Category() ErrorCategory {
	return categoryFor(e.StatusCode)
}

// Recoverable reports whether the same request may succeed later.
func (e *APIError) Recoverable() bool {
	return e.Category() == Recoverable
}

func categoryFor(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Irrecoverable
	}
}
