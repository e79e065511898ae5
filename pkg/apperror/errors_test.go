package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("LOY_002", "User not found", http.StatusNotFound),
			expected: "[LOY_002] User not found",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_002", "Failed to generate pass", http.StatusInternalServerError, fmt.Errorf("no signer key")),
			expected: "[SYS_002] Failed to generate pass: no signer key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, New("LOY_001", "test", http.StatusBadRequest).Unwrap())
}

func TestLoyaltyErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"MissingCurrentPoints", ErrMissingCurrentPoints(), "LOY_001", 400},
		{"UserNotFound", ErrUserNotFound(), "LOY_002", 404},
		{"Validation", Validation("bad body"), "LOY_003", 400},
		{"BodyTooLarge", ErrBodyTooLarge(), "LOY_004", 413},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("reading pass.key: file does not exist")

	internal := InternalError(inner)
	assert.Equal(t, "SYS_001", internal.Code)
	assert.Equal(t, 500, internal.HTTPStatus)
	assert.True(t, errors.Is(internal, inner))

	gen := ErrPassGeneration(inner)
	assert.Equal(t, "SYS_002", gen.Code)
	assert.Equal(t, 500, gen.HTTPStatus)
	assert.Equal(t, "Failed to generate pass", gen.Message)
	assert.NotContains(t, gen.Message, "pass.key", "cause must not leak into the client message")
	assert.True(t, errors.Is(gen, inner))
}
