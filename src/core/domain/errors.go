package domain

import (
	"errors"
	"fmt"
)

// Base errors for the service layers. The identifier model itself never
// fails; these describe registry lookups and request validation.
var (
	// ErrNotFound is returned when no provider is registered for a domain.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when a request does not pass validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when a provider domain is already registered.
	ErrConflict = errors.New("conflict")

	// ErrUnavailable is returned when a backing store can not serve a request.
	ErrUnavailable = errors.New("unavailable")
)

// DomainError attaches context to one of the base errors.
type DomainError struct {
	// Base is one of the package errors (e.g. ErrNotFound).
	Base error

	// Message is the human-readable detail.
	Message string

	// Field names the offending input field, if any.
	Field string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s (field: %s)", e.Base.Error(), e.Message, e.Field)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	default:
		return e.Base.Error()
	}
}

// Unwrap exposes Base to errors.Is and errors.As.
func (e *DomainError) Unwrap() error {
	return e.Base
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{Base: ErrNotFound, Message: resource}
}

// NewValidationError reports an invalid field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{Base: ErrInvalidInput, Message: message, Field: field}
}

// NewConflictError reports a clash with existing state.
func NewConflictError(message string) *DomainError {
	return &DomainError{Base: ErrConflict, Message: message}
}

// NewUnavailableError reports a store that can not be reached.
func NewUnavailableError(message string) *DomainError {
	return &DomainError{Base: ErrUnavailable, Message: message}
}

// IsNotFound checks for ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks for ErrInvalidInput.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConflict checks for ErrConflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsUnavailable checks for ErrUnavailable.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
