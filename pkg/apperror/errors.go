package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Loyalty (LOY) ----

func ErrMissingCurrentPoints() *AppError {
	return New("LOY_001", "Please provide currentPoints, totalPoints, and prizes in request body", http.StatusBadRequest)
}

func ErrUserNotFound() *AppError {
	return New("LOY_002", "User not found or no data available", http.StatusNotFound)
}

// Validation returns a LOY_003 error for a malformed request.
func Validation(message string) *AppError {
	return New("LOY_003", message, http.StatusBadRequest)
}

func ErrBodyTooLarge() *AppError {
	return New("LOY_004", "Request body too large", http.StatusRequestEntityTooLarge)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrPassGeneration hides the cause of a failed pass build from the client.
func ErrPassGeneration(err error) *AppError {
	return Wrap("SYS_002", "Failed to generate pass", http.StatusInternalServerError, err)
}
