package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest         = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrConflict           = &AppError{Code: http.StatusConflict, Message: "Resource already exists"}
	ErrUnprocessable      = &AppError{Code: http.StatusUnprocessableEntity, Message: "Unprocessable entity"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid email or password"}
	ErrTokenExpired       = &AppError{Code: http.StatusUnauthorized, Message: "Token has expired"}
	ErrInvalidToken       = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}
)

// Domain errors shared by the pricing and retention engines
var (
	// ErrNoPriceConfigured means a service has no effective price at the
	// reference time; terminal for order creation
	ErrNoPriceConfigured = &AppError{Code: http.StatusBadRequest, Message: "No price found for this service"}

	// ErrInvalidWeight means the order weight is not a positive number
	ErrInvalidWeight = &AppError{Code: http.StatusBadRequest, Message: "Invalid weight value"}

	// ErrInvalidPromoCode covers every promo code failure shape: not found,
	// inactive, expired, not yet started. Callers are not told which.
	ErrInvalidPromoCode = &AppError{Code: http.StatusNotFound, Message: "Invalid promo code"}

	// ErrMissingFilter rejects an unfiltered bulk deletion of orders or
	// payments; only the explicit full reset may run without filters
	ErrMissingFilter = &AppError{Code: http.StatusBadRequest, Message: "Please specify date range, olderThan, or status parameter"}

	// ErrCustomerHasOrders protects customers with orders from deletion
	ErrCustomerHasOrders = &AppError{Code: http.StatusConflict, Message: "Customer has existing orders and cannot be deleted"}

	// ErrServiceHasOrders protects services referenced by orders from deletion
	ErrServiceHasOrders = &AppError{Code: http.StatusConflict, Message: "Service has existing orders and cannot be deleted"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible. Unknown errors map
// to a generic 500; their detail belongs in the server log, not the response.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	}
}
