package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the search core.
var (
	// ErrInvalidSearch indicates search parameters failed validation.
	// Invalid searches are rejected before any provider call is made.
	ErrInvalidSearch = errors.New("invalid search")

	// ErrSessionNotFound indicates the referenced search session does not
	// exist or has been evicted.
	ErrSessionNotFound = errors.New("search session not found")

	// ErrFlightNotFound indicates the referenced flight is not present in
	// the session's current result set.
	ErrFlightNotFound = errors.New("flight not found")
)

// ProviderError is a structured error from the flight provider boundary.
// It carries the HTTP status, the provider's message and an optional
// provider-specific code.
type ProviderError struct {
	// Status is the HTTP status code of the failed call (500 for transport
	// failures with no response)
	Status int

	// Message is a human-readable description of the failure
	Message string

	// Code is the provider's machine-readable error code, if any
	Code string
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("provider error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("provider error %d: %s", e.Status, e.Message)
}

// NewProviderError creates a ProviderError with the given status and message.
func NewProviderError(status int, message, code string) *ProviderError {
	return &ProviderError{
		Status:  status,
		Message: message,
		Code:    code,
	}
}

// AsProviderError extracts a ProviderError from an error chain.
// Returns nil and false when the chain contains none.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
