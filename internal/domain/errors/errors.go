// Package errors defines the typed rejection taxonomy of the purchase engine.
package errors

import (
	"net/http"

	"vend/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Retryable() bool   // Whether the caller may safely retry the identical request
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	retryable bool
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

// Retryable reports whether retrying the identical request is safe.
func (e *BaseError) Retryable() bool {
	return e.retryable
}

func (e *BaseError) asRetryable() *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		retryable: true,
	}
}

// Predefined error types
var (
	// Purchase rejections. All are definitive business decisions except
	// ErrTransientConflict, which is the only reason a caller should retry.
	ErrInvalidRequest = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REQUEST",
		"invalid purchase request",
	)

	ErrInsufficientFunds = NewBaseError(
		http.StatusPaymentRequired,
		"INSUFFICIENT_FUNDS",
		"credit balance is insufficient for this purchase",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"not enough unsold stock for this purchase",
	)

	ErrInvalidCoupon = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COUPON",
		"coupon is unknown, expired, exhausted or does not cover this product",
	)

	ErrCouponAlreadyUsed = NewBaseError(
		http.StatusConflict,
		"COUPON_ALREADY_USED",
		"this coupon was already used by this account",
	)

	ErrTransientConflict = NewBaseError(
		http.StatusConflict,
		"TRANSIENT_CONFLICT",
		"a concurrent purchase held the row lock, please retry",
	).asRetryable()

	// Lookup errors.
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"account not found",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
	)

	// Authentication-related errors.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"email or API secret is incorrect",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
	)

	// Validation-related errors.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
	)

	// Snapshot-related errors.
	ErrSnapshotNotFound = NewBaseError(
		http.StatusNotFound,
		"SNAPSHOT_NOT_FOUND",
		"snapshot not found",
	)

	// General errors.
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
	)
)

// StorageFailureError represents an unexpected persistence error. The caller
// must not assume any side effect occurred, since the commit phase is atomic.
type StorageFailureError struct {
	err     error
	details string
}

// NewStorageFailureError creates a storage-related error
func NewStorageFailureError(err error, details string) AppError {
	return &StorageFailureError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageFailureError) Error() string {
	return errors.Wrap(e.err, "storage failure").Error()
}

// HTTPCode returns the HTTP status code
func (e *StorageFailureError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageFailureError) ErrorCode() string {
	return "STORAGE_FAILURE"
}

// Message returns the user-friendly error message
func (e *StorageFailureError) Message() string {
	return "storage failure, no side effect can be assumed"
}

// Retryable reports whether retrying is safe. Storage failures are not,
// because the outcome of the attempt is unknown to the caller.
func (e *StorageFailureError) Retryable() bool {
	return false
}

// Details returns detailed error information
func (e *StorageFailureError) Details() string {
	return e.details
}

// Unwrap exposes the underlying driver error.
func (e *StorageFailureError) Unwrap() error {
	return e.err
}
