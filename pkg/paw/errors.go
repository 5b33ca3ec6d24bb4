package paw

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a failed response from the PythonAnywhere API. It keeps
// the request URL, the HTTP status, and the raw body so failures can be
// debugged without re-issuing the request.
type APIError struct {
	URL        string `json:"url"         yaml:"url"`
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Status     string `json:"status"      yaml:"status"`
	Body       string `json:"body"        yaml:"body"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API request to %s failed, got %s: %s", e.URL, e.Status, e.Body)
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrUsernameRequired     = errors.New("username is required")
	ErrHostRequired         = errors.New("API host is required")
	ErrAPITokenMissing      = errors.New("could not find your API token; create one on the Accounts page and set the API_TOKEN environment variable")
	ErrWebappExists         = errors.New("webapp already exists for this domain")
	ErrUnknownPythonVersion = errors.New("unknown Python version")
	ErrInvalidLogType       = errors.New("invalid log type")
	ErrDomainRequired       = errors.New("domain name is required")
	ErrCreateFailed         = errors.New("webapp creation reported an error status")
)

// IsNotFound checks if the error is a 404 API error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsConflict checks if the error is a 409 API error.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

// IsForbidden checks if the error is a 403 API error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsUnauthorized checks if the error is a 401 API error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

func hasStatus(err error, code int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}

	return false
}
