package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message, rendered as {"error": message}
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context for logs.
// The client still only sees Message().
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

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

var (
	// Input errors
	ErrCredentialsRequired = NewBaseError(
		http.StatusUnprocessableEntity,
		"CREDENTIALS_REQUIRED",
		"username and password required",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusUnprocessableEntity,
		"USERNAME_TAKEN",
		"username must be unique",
	)

	ErrInvalidRecipe = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_RECIPE",
		"Invalid recipe",
	)

	ErrInstructionsTooShort = NewBaseError(
		http.StatusUnprocessableEntity,
		"INSTRUCTIONS_TOO_SHORT",
		"Instructions must be at least 50 characters long",
	)

	ErrPasswordUnusable = NewBaseError(
		http.StatusUnprocessableEntity,
		"PASSWORD_UNUSABLE",
		"password cannot be used",
	)

	ErrInvalidRequestBody = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REQUEST_BODY",
		"Invalid request body",
	)

	// Authorization errors
	ErrNotAuthorized = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHORIZED",
		"Not authorized",
	)

	// Unknown username and wrong password deliberately share one error.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
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

// Error keeps the driver error for logs; Message hides it from clients.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error to errors.Is / errors.As.
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

// Message returns the user-facing error message
func (e *DatabaseExecuteError) Message() string {
	return ErrInternalError.Message()
}
