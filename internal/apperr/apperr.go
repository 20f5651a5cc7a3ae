package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the class of a failure.
type Code string

const (
	CodeValidation    Code = "VALIDATION"     // 400
	CodeUnauthorized  Code = "UNAUTHORIZED"   // 401
	CodeConflict      Code = "CONFLICT"       // 409
	CodeConfiguration Code = "CONFIGURATION"  // 500
	CodeEmailDelivery Code = "EMAIL_DELIVERY" // 500
	CodeStore         Code = "STORE"          // 500
)

// Error is a failure with the HTTP status and client-facing message it maps to.
// Err, when set, is the underlying cause and is never shown to clients.
type Error struct {
	Code    Code
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Validation is a user-correctable input problem.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Status: http.StatusBadRequest, Message: msg}
}

// Unauthorized is a rejected credential.
func Unauthorized(msg string) *Error {
	return &Error{Code: CodeUnauthorized, Status: http.StatusUnauthorized, Message: msg}
}

// Conflict is a uniqueness violation.
func Conflict(msg string) *Error {
	return &Error{Code: CodeConflict, Status: http.StatusConflict, Message: msg}
}

// Configuration means the deployment is missing something; not user-correctable.
func Configuration(msg string) *Error {
	return &Error{Code: CodeConfiguration, Status: http.StatusInternalServerError, Message: msg}
}

// EmailDelivery wraps a mail transport failure.
func EmailDelivery(msg string, err error) *Error {
	return &Error{Code: CodeEmailDelivery, Status: http.StatusInternalServerError, Message: msg, Err: err}
}

// Store wraps a persistence failure.
func Store(msg string, err error) *Error {
	return &Error{Code: CodeStore, Status: http.StatusInternalServerError, Message: msg, Err: err}
}

// Is reports whether err is an *Error with the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// StatusOf returns the HTTP status for err; unknown errors are 500.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-facing message for err. Unknown errors get
// fallback so internal details never leak.
func MessageOf(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}
