// Package errors defines the application-specific error types shared by
// the usecase and infra layers.
package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError is the interface for application-specific errors. The HTTP
// code doubles as the status the stub server reports for the same
// condition.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is the basic value implementing AppError.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types
var (
	// Session-related errors
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Please sign in to continue",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"An account with this email already exists",
	)

	// Validation errors, caught before any request is sent
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failed",
	)

	ErrFirstNameRequired = NewBaseError(
		http.StatusBadRequest,
		"FIRST_NAME_REQUIRED",
		"First name is required",
	)

	ErrLastNameRequired = NewBaseError(
		http.StatusBadRequest,
		"LAST_NAME_REQUIRED",
		"Last name is required",
	)

	ErrAddressRequired = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_REQUIRED",
		"Address is required",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"Your cart is empty",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
	)

	ErrOrderNotCancellable = NewBaseError(
		http.StatusBadRequest,
		"ORDER_NOT_CANCELLABLE",
		"This order can no longer be cancelled",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
	)

	// Transport errors
	ErrGatewayUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"GATEWAY_UNAVAILABLE",
		"An error occurred",
	)
)
