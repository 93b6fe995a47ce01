package errors

import (
	"net/http"
	"strings"

	"pillmate/internal/errors"
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

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches copies produced by WithDetails against their predefined origin.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Authentication-related errors
	ErrDeviceAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"DEVICE_AUTH_FAILED",
		"Invalid device serial or secret",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid access token",
		"",
	)

	ErrSecretHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"SECRET_HASH_FAILED",
		"Failed to process device secret",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrDuplicateDevice = NewBaseError(
		http.StatusConflict,
		"DEVICE_ALREADY_EXISTS",
		"A device with this serial is already registered",
		"",
	)

	ErrCompartmentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPARTMENT_NOT_FOUND",
		"Compartment not found",
		"",
	)

	ErrScheduleNotFound = NewBaseError(
		http.StatusNotFound,
		"SCHEDULE_NOT_FOUND",
		"Schedule not found",
		"",
	)

	// Command-related errors
	ErrCommandNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMAND_NOT_FOUND",
		"Command not found",
		"",
	)

	ErrCommandStateConflict = NewBaseError(
		http.StatusConflict,
		"COMMAND_STATE_CONFLICT",
		"Command is not awaiting acknowledgement",
		"",
	)

	// Push-related errors
	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"Push subscription not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// FieldViolation describes one invalid input field.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is a ValidationFailure carrying per-field detail for the caller.
type ValidationError struct {
	violations []FieldViolation
}

// NewValidationError creates a validation error from the given field violations.
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{violations: violations}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return ErrValidationFailed.Message() + ": " + e.Details()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return ErrValidationFailed.HTTPCode()
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details joins the violations into a single line.
func (e *ValidationError) Details() string {
	parts := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		parts = append(parts, v.Field+": "+v.Reason)
	}

	return strings.Join(parts, "; ")
}

// Violations returns the structured field detail.
func (e *ValidationError) Violations() []FieldViolation {
	return e.violations
}

// Is lets errors.Is(err, ErrValidationFailed) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

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

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
