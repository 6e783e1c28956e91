package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAPIError_Message(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		body any
		want string
	}{
		{"json message", map[string]any{"code": float64(5), "message": "user not found"}, "user not found"},
		{"non-string message", map[string]any{"message": float64(12)}, "Request failed: 404"},
		{"no message", map[string]any{"error": "x"}, "Request failed: 404"},
		{"plain text", "<html>nope</html>", "Request failed: 404"},
		{"empty", nil, "Request failed: 404"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewAPIError(404, tc.body)
			assert.Equal(t, tc.want, e.Message)
			assert.Equal(t, tc.want, e.Error())
			assert.Equal(t, 404, e.StatusCode)
			assert.Equal(t, tc.body, e.Body)
		})
	}
}

func TestAPIError_Category(t *testing.T) {
	t.Parallel()
	recoverable := []int{408, 429, 500, 502, 503}
	for _, code := range recoverable {
		assert.True(t, NewAPIError(code, nil).Recoverable(), code)
	}
	irrecoverable := []int{400, 401, 403, 404, 409}
	for _, code := range irrecoverable {
		assert.False(t, NewAPIError(code, nil).Recoverable(), code)
	}
	assert.Equal(t, "Irrecoverable", NewAPIError(401, nil).Category().String())
	assert.Equal(t, "Unknown(7)", ErrorCategory(7).String())
}
