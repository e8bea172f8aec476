package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeValidationError, http.StatusBadRequest},
		{ErrCodeConcurrency, http.StatusConflict},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{ErrCodeMaxDepth, http.StatusBadRequest},
		{ErrCodeNoStock, http.StatusUnprocessableEntity},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeInternal, http.StatusInternalServerError},
		// Unknown code should return 500
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"NOT_FOUND", ErrCodeNotFound},
		{"INVALID_STATE", ErrCodeInvalidState},
		// Field-specific validation codes fold into the generic one
		{"INVALID_NAME", ErrCodeValidation},
		{"INVALID_PRICE", ErrCodeValidation},
		{"INVALID_ADDRESS", ErrCodeValidation},
		{"INVALID_PARENT", ErrCodeValidation},
		// Unknown non-validation codes pass through
		{"CONCURRENT_MODIFICATION", "CONCURRENT_MODIFICATION"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeErrorCode(tt.input))
		})
	}
}

func TestNormalizedValidationCodesMapTo400(t *testing.T) {
	for _, code := range []string{"INVALID_SKU", "INVALID_DISCOUNT", "INVALID_USER"} {
		assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(NormalizeErrorCode(code)))
	}
}
