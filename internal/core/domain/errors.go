package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrUnauthenticated    = errors.New("login required")
	ErrForbidden          = errors.New("admin access required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCannotDeleteSelf   = errors.New("cannot delete your own account")
)

// ValidationError reports a field rule violation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError for field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UniquenessError reports a unique constraint violation on a field
type UniquenessError struct {
	Field string
}

func (e *UniquenessError) Error() string {
	if e.Field == "" {
		return "a record with the same unique value already exists"
	}
	return fmt.Sprintf("%s already exists", e.Field)
}

// Is lets errors.Is(err, ErrDuplicateEntry) match any UniquenessError
func (e *UniquenessError) Is(target error) bool {
	return target == ErrDuplicateEntry
}

// NotFoundError names the missing resource
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// Is lets errors.Is(err, ErrNotFound) match any NotFoundError
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
