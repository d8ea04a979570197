// Package errors provides standardized error handling for registry operations.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeActivityNotFound ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeAlreadySignedUp  ErrorCode = "ALREADY_SIGNED_UP"
	ErrCodeNotRegistered    ErrorCode = "NOT_REGISTERED"
	ErrCodeMissingEmail     ErrorCode = "MISSING_EMAIL"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// RegistryError represents a structured application error. Message is the
// human-readable detail string reported to the caller.
type RegistryError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("RegistryError[%s]: %s", e.Code, e.Message)
}

// NewActivityNotFound creates an error for an unknown activity name.
// The detail string matches the public API contract and carries no name.
func NewActivityNotFound() *RegistryError {
	return &RegistryError{
		Code:      ErrCodeActivityNotFound,
		Message:   "Activity not found",
		Timestamp: time.Now().UTC(),
	}
}

// NewAlreadySignedUp creates an error for a duplicate signup.
func NewAlreadySignedUp(email, activity string) *RegistryError {
	return &RegistryError{
		Code:      ErrCodeAlreadySignedUp,
		Message:   fmt.Sprintf("%s is already signed up for %s", email, activity),
		Timestamp: time.Now().UTC(),
	}
}

// NewNotRegistered creates an error for unregistering an absent participant.
func NewNotRegistered(email, activity string) *RegistryError {
	return &RegistryError{
		Code:      ErrCodeNotRegistered,
		Message:   fmt.Sprintf("%s is not registered for %s", email, activity),
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingEmail creates an error for a request without the email parameter.
func NewMissingEmail() *RegistryError {
	return &RegistryError{
		Code:      ErrCodeMissingEmail,
		Message:   "email is required",
		Timestamp: time.Now().UTC(),
	}
}

// HTTPStatusMapping maps internal error codes to HTTP status codes.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeActivityNotFound: http.StatusNotFound,
	ErrCodeAlreadySignedUp:  http.StatusBadRequest,
	ErrCodeNotRegistered:    http.StatusBadRequest,
	ErrCodeMissingEmail:     http.StatusBadRequest,
	ErrCodeInternal:         http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status code for an error code.
func HTTPStatus(code ErrorCode) int {
	if status, exists := HTTPStatusMapping[code]; exists {
		return status
	}
	return http.StatusInternalServerError
}
