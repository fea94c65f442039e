package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the authenticated operator may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrPurgeFailed indicates that a shift closure committed but the live expense rows for the
// closed day could not be removed by either deletion strategy. The closure row stands, so the
// day's expenses are double-counted until the operation is retried.
var ErrPurgeFailed = errors.New("expense purge failed")

// AppError carries an HTTP-ish status code alongside a message and an optional wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches errors.Is(err, ErrValidation).
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}
