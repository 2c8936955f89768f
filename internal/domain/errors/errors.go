package errors

import (
	"fmt"
	"net/http"

	"smartpack/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError with the same business code, so copies made by
// WithDetails still compare equal to the sentinel.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.errorCode == e.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrUnknownThreshold = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_THRESHOLD",
		"Unknown threshold kind",
		"",
	)

	ErrBookNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOK_NOT_FOUND",
		"Book not found",
		"",
	)

	ErrScanInProgress = NewBaseError(
		http.StatusConflict,
		"SCAN_IN_PROGRESS",
		"A book scan is already running",
		"",
	)

	ErrUnknownEvent = NewBaseError(
		http.StatusInternalServerError,
		"UNKNOWN_EVENT",
		"Unknown event type",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// ExternalServiceError reports a failed call to an outside collaborator such as
// the weather provider. The core recovers from it locally, so it travels as an
// advisory next to fallback data rather than as a request failure.
type ExternalServiceError struct {
	service string
	err     error
}

// NewExternalServiceError wraps err as a failure of the named service.
func NewExternalServiceError(service string, err error) *ExternalServiceError {
	return &ExternalServiceError{
		service: service,
		err:     err,
	}
}

// Error implements the error interface
func (e *ExternalServiceError) Error() string {
	if e.err == nil {
		return e.service + " unavailable"
	}

	return errors.Wrapf(e.err, "%s unavailable", e.service).Error()
}

// Unwrap returns the underlying failure
func (e *ExternalServiceError) Unwrap() error {
	return e.err
}

// Service names the collaborator that failed
func (e *ExternalServiceError) Service() string {
	return e.service
}

// HTTPCode returns the HTTP status code
func (e *ExternalServiceError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *ExternalServiceError) ErrorCode() string {
	return "EXTERNAL_SERVICE_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *ExternalServiceError) Message() string {
	return fmt.Sprintf("%s is unavailable, showing sample data", e.service)
}

// Details returns detailed error information
func (e *ExternalServiceError) Details() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}
