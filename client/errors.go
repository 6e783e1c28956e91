package client

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/sker65/headsup/client/config"
	apierrors "github.com/sker65/headsup/client/internal/errors"
)

// APIError is returned for every non-2xx response.
type APIError = apierrors.APIError

// ConfigurationError is returned when the base URL or credential is missing.
type ConfigurationError = config.ConfigurationError

// AsAPIError extracts the APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsAPIError reports whether err is a non-2xx server response.
func IsAPIError(err error) bool {
	_, ok := AsAPIError(err)
	return ok
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

// IsUnauthorized reports whether err is a 401 or 403 response.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized) || hasStatus(err, http.StatusForbidden)
}

// IsConfigurationError reports whether err stems from missing configuration.
func IsConfigurationError(err error) bool {
	var cerr *ConfigurationError
	return errors.As(err, &cerr)
}

// IsTransportError reports whether err came from the network layer rather
// than from a server response.
func IsTransportError(err error) bool {
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func hasStatus(err error, status int) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == status
}
