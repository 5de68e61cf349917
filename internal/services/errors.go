package services

import (
	"errors"
	"fmt"
	"log"

	"professionals-api/internal/storage"
)

// Define common service errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("conflict") // e.g., duplicate email, state conflict
	ErrValidation          = errors.New("validation failed")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidState        = errors.New("invalid state for operation")
	ErrInvalidTransition   = errors.New("invalid state transition")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrBanned              = errors.New("account banned")
	ErrUnsupportedProvider = errors.New("unsupported login provider")
	ErrTooManyRequests     = errors.New("too many requests")
)

// FieldError is a validation failure bound to a request field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}

func fieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

// MapRepoError maps storage errors to service errors
func MapRepoError(err error, operation string) error {
	if err == nil {
		return nil
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return err
	}
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrConflict) || errors.Is(err, storage.ErrInUse) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}
