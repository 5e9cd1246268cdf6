package apperrors

import (
	"errors"
	"fmt"
)

// AppError represents an application-specific error
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails adds additional details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// NewAppError creates a new application error
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error codes
const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeLocationNotFound    = "LOCATION_NOT_FOUND"
	ErrCodeQuotaExceeded       = "QUOTA_EXCEEDED"
	ErrCodeCredentialsRejected = "CREDENTIALS_REJECTED"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeServiceError        = "SERVICE_ERROR"
)

// Common error constructors
func NotFound(message string, cause error) *AppError {
	return NewAppError(ErrCodeNotFound, message, cause)
}

func InvalidInput(message string, cause error) *AppError {
	return NewAppError(ErrCodeInvalidInput, message, cause)
}

func LocationNotFound(message string, cause error) *AppError {
	return NewAppError(ErrCodeLocationNotFound, message, cause)
}

func QuotaExceeded(message string, cause error) *AppError {
	return NewAppError(ErrCodeQuotaExceeded, message, cause)
}

func CredentialsRejected(message string, cause error) *AppError {
	return NewAppError(ErrCodeCredentialsRejected, message, cause)
}

func InternalError(message string, cause error) *AppError {
	return NewAppError(ErrCodeInternalError, message, cause)
}

func ServiceError(message string, cause error) *AppError {
	return NewAppError(ErrCodeServiceError, message, cause)
}

// CodeOf extracts the error code from err, walking the wrap chain. It
// returns INTERNAL_ERROR for non-application errors.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternalError
}

// IsCode reports whether err carries the given application error code.
func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}
