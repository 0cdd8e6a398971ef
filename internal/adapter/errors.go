package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")

	errNoBearerToken = errors.New("no bearer token in response")
)

// Issue is a single field-level validation problem reported by the server.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// APIError is a non-2xx response of the marketplace API.
type APIError struct {
	StatusCode int
	Message    string
	Details    []Issue

	kind error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the sentinel matching the status code, or nil for statuses
// without one.
func (e *APIError) Unwrap() error {
	return e.kind
}
