package errors

import "fmt"

// NewAPIError builds the error for a failed response. The message is the
// body's "message" field when that field is a string, otherwise a generic
// "Request failed: <status>".
func NewAPIError(statusCode int, body any) *APIError {
	msg := fmt.Sprintf("Request failed: %d", statusCode)
	if obj, ok := body.(map[string]any); ok {
		if m, ok := obj["message"].(string); ok {
			msg = m
		}
	}
	return &APIError{StatusCode: statusCode, Message: msg, Body: body}
}
