package remote

import (
	"errors"
	"fmt"
)

// Preconditions checked before any network attempt.
var (
	// ErrNoRemote indicates no remote base URL is configured.
	ErrNoRemote = errors.New("no remote configured")

	// ErrNoToken indicates no auth token is configured.
	ErrNoToken = errors.New("no token configured")
)

// APIError is a non-success response from the dataset service.
type APIError struct {
	StatusCode int
	Endpoint   string

	// Message is taken from the response body's "error" field,
	// falling back to "message", falling back to the status text.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote error (%d) at %s: %s", e.StatusCode, e.Endpoint, e.Message)
}
