package dto

import (
	"net/http"
	"strings"
)

// Error codes shared between domain errors and API responses
const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeAlreadyExists   = "ALREADY_EXISTS"
	ErrCodeValidation      = "VALIDATION"
	ErrCodeValidationError = "VALIDATION_ERROR"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeInvalidState    = "INVALID_STATE"
	ErrCodeConcurrency     = "CONCURRENCY_CONFLICT"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeMaxDepth        = "MAX_DEPTH_EXCEEDED"
	ErrCodeNoStock         = "INSUFFICIENT_STOCK"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeAlreadyExists:   http.StatusConflict,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeValidationError: http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeUnauthorized:    http.StatusUnauthorized,
	ErrCodeForbidden:       http.StatusForbidden,
	ErrCodeInvalidState:    http.StatusUnprocessableEntity,
	ErrCodeConcurrency:     http.StatusConflict,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeMaxDepth:        http.StatusBadRequest,
	ErrCodeNoStock:         http.StatusUnprocessableEntity,
	ErrCodeInternal:        http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// NormalizeErrorCode folds field-specific validation codes (INVALID_NAME,
// INVALID_PRICE, ...) into the generic validation code so they all map to
// 400. INVALID_STATE keeps its own 422 mapping.
func NormalizeErrorCode(code string) string {
	if _, ok := ErrorCodeHTTPStatus[code]; ok {
		return code
	}
	if strings.HasPrefix(code, "INVALID_") {
		return ErrCodeValidation
	}
	return code
}
