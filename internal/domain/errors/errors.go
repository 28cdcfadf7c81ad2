package errors

import (
	"net/http"

	"placeswipe/internal/errors"
)

// AppError defines the interface for application-specific errors.
// ErrorCode doubles as the failure tag sent to RPC clients.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
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
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The copy still matches the
// original sentinel under errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Error codes shared with RPC clients.
const (
	CodeUnauthenticated  = "UNAUTHENTICATED"
	CodePlaceNotFound    = "PLACE_NOT_FOUND"
	CodeImageNotFound    = "IMAGE_NOT_FOUND"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeDatabaseExecute  = "DATABASE_EXECUTE_FAILED"
	CodeStorageFailed    = "STORAGE_FAILED"
	CodeGeocodingFailed  = "GEOCODING_FAILED"
	CodeInternalError    = "INTERNAL_ERROR"
	CodeUnknownMethod    = "UNKNOWN_METHOD"
	CodeMalformedRequest = "MALFORMED_REQUEST"
)

// Predefined error types
var (
	// Authentication
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthenticated,
		"sign in required",
		"",
	)

	ErrRoleRequired = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthenticated,
		"this action requires a different account role",
		"",
	)

	ErrOnboardingIncomplete = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthenticated,
		"user not found, complete onboarding",
		"",
	)

	// Not found. Also returned when the caller does not own the resource.
	ErrPlaceNotFound = NewBaseError(
		http.StatusNotFound,
		CodePlaceNotFound,
		"place not found",
		"",
	)

	ErrImageNotFound = NewBaseError(
		http.StatusNotFound,
		CodeImageNotFound,
		"image not found",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		CodeValidationFailed,
		"input validation failed",
		"",
	)

	// External infrastructure
	ErrStorageFailed = NewBaseError(
		http.StatusBadGateway,
		CodeStorageFailed,
		"object storage request failed",
		"",
	)

	ErrGeocodingFailed = NewBaseError(
		http.StatusBadGateway,
		CodeGeocodingFailed,
		"location lookup failed",
		"",
	)

	// RPC transport
	ErrUnknownMethod = NewBaseError(
		http.StatusNotFound,
		CodeUnknownMethod,
		"unknown method",
		"",
	)

	ErrMalformedRequest = NewBaseError(
		http.StatusBadRequest,
		CodeMalformedRequest,
		"malformed request",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		CodeInternalError,
		"unexpected error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return CodeDatabaseExecute
}

func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Resolve maps err to the AppError it carries, or ErrInternalError.
func Resolve(err error) AppError {
	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr
	}

	return ErrInternalError
}
