package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError carrying the same code, so that
// errors.Is matches a sentinel even when the message was specialised.
func (e *DomainError) Is(target error) bool {
	var other *DomainError
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

// WithMessage returns a copy of the error with a more specific message.
func (e *DomainError) WithMessage(message string) *DomainError {
	return &DomainError{Code: e.Code, Message: message}
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrValidation          = NewDomainError("VALIDATION_ERROR", "Validation failed")
)

// Currency errors
var (
	ErrUnknownCurrency      = NewDomainError("UNKNOWN_CURRENCY", "Currency is unknown or inactive")
	ErrRateNotFound         = NewDomainError("RATE_NOT_FOUND", "No exchange rate on or before the requested date")
	ErrUnknownBaseCurrency  = NewDomainError("UNKNOWN_BASE_CURRENCY", "No base currency is configured")
	ErrCannotDeactivateBase = NewDomainError("CANNOT_DEACTIVATE_BASE", "The base currency cannot be deactivated")
)

// Inventory errors
var (
	ErrInsufficientStock         = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrInvalidCategoryReference  = NewDomainError("INVALID_CATEGORY_REFERENCE", "Referenced category does not exist")
	ErrCircularCategoryReference = NewDomainError("CIRCULAR_CATEGORY_REFERENCE", "Category cannot be its own ancestor")
)
