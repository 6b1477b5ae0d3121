package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound  = errors.New("resource not found")
	ErrConflict          = errors.New("conflict")
	ErrReferenceNotFound = errors.New("referenced resource does not exist")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrUnauthorized       = errors.New("authentication credentials were not provided")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Conflict errors carry ErrConflict so handlers can map them without knowing the field
var (
	ErrUsernameAlreadyExists = fmt.Errorf("a user with that username already exists: %w", ErrConflict)
	ErrEmailAlreadyExists    = fmt.Errorf("a record with that email already exists: %w", ErrConflict)
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewReferenceError reports a dangling foreign key on the given field
func NewReferenceError(field string, id int64) error {
	return &CustomError{
		Err:     ErrReferenceNotFound,
		Message: fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id),
		Field:   field,
	}
}

// NewValidationError reports an invalid value for the given field
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// AsCustomError unwraps err into a *CustomError when one is in the chain
func AsCustomError(err error) (*CustomError, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
