package dto

import "net/http"

// Error codes returned in the response envelope.
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	ErrCodeValidation         = "ERR_VALIDATION"
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	ErrCodeValidationFormat   = "ERR_VALIDATION_FORMAT"
	ErrCodeValidationRange    = "ERR_VALIDATION_RANGE"
	ErrCodeValidationLength   = "ERR_VALIDATION_LENGTH"
)

// Resource error codes
const (
	ErrCodeNotFound            = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists       = "ERR_ALREADY_EXISTS"
	ErrCodeConflict            = "ERR_CONFLICT"
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"

	// ErrCodeRequestInFlight is returned while a request with the same
	// Idempotency-Key is still being processed
	ErrCodeRequestInFlight = "ERR_REQUEST_IN_FLIGHT"
)

// Currency error codes
const (
	ErrCodeUnknownCurrency      = "ERR_UNKNOWN_CURRENCY"
	ErrCodeRateNotFound         = "ERR_RATE_NOT_FOUND"
	ErrCodeUnknownBaseCurrency  = "ERR_UNKNOWN_BASE_CURRENCY"
	ErrCodeCannotDeactivateBase = "ERR_CANNOT_DEACTIVATE_BASE"
)

// Business rule error codes
const (
	ErrCodeInvalidState              = "ERR_INVALID_STATE"
	ErrCodeInsufficientStock         = "ERR_INSUFFICIENT_STOCK"
	ErrCodeInvalidCategoryReference  = "ERR_INVALID_CATEGORY_REFERENCE"
	ErrCodeCircularCategoryReference = "ERR_CIRCULAR_CATEGORY_REFERENCE"
)

// Input error codes
const (
	ErrCodeBadRequest      = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput    = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON     = "ERR_INVALID_JSON"
	ErrCodePayloadTooLarge = "ERR_PAYLOAD_TOO_LARGE"
)

// Access error codes
const (
	ErrCodeForbidden   = "ERR_FORBIDDEN"
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,
	ErrCodeValidationRange:    http.StatusBadRequest,
	ErrCodeValidationLength:   http.StatusBadRequest,

	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,
	ErrCodeRequestInFlight:     http.StatusConflict,

	// Unknown currencies and missing rates are lookups that found nothing.
	ErrCodeUnknownCurrency:      http.StatusNotFound,
	ErrCodeRateNotFound:         http.StatusNotFound,
	ErrCodeUnknownBaseCurrency:  http.StatusConflict,
	ErrCodeCannotDeactivateBase: http.StatusConflict,

	ErrCodeInvalidState:              http.StatusUnprocessableEntity,
	ErrCodeInsufficientStock:         http.StatusUnprocessableEntity,
	ErrCodeInvalidCategoryReference:  http.StatusUnprocessableEntity,
	ErrCodeCircularCategoryReference: http.StatusUnprocessableEntity,

	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodePayloadTooLarge: http.StatusRequestEntityTooLarge,

	ErrCodeForbidden:   http.StatusForbidden,
	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unmapped codes yield 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps shared.DomainError codes to API error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":                   ErrCodeNotFound,
	"ALREADY_EXISTS":              ErrCodeAlreadyExists,
	"INVALID_INPUT":               ErrCodeInvalidInput,
	"INVALID_STATE":               ErrCodeInvalidState,
	"CONCURRENCY_CONFLICT":        ErrCodeConcurrencyConflict,
	"VALIDATION_ERROR":            ErrCodeValidation,
	"UNKNOWN_CURRENCY":            ErrCodeUnknownCurrency,
	"RATE_NOT_FOUND":              ErrCodeRateNotFound,
	"UNKNOWN_BASE_CURRENCY":       ErrCodeUnknownBaseCurrency,
	"CANNOT_DEACTIVATE_BASE":      ErrCodeCannotDeactivateBase,
	"INSUFFICIENT_STOCK":          ErrCodeInsufficientStock,
	"INVALID_CATEGORY_REFERENCE":  ErrCodeInvalidCategoryReference,
	"CIRCULAR_CATEGORY_REFERENCE": ErrCodeCircularCategoryReference,
}

// NormalizeErrorCode converts a domain error code to its API form.
// Codes already in API form, and unknown codes, are returned as-is.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := DomainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return code
}
