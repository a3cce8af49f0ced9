// Package domain defines the core domain models for TodoVault.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
// Codes follow the format TV-<AREA>-<nnnn>, where the numeric part hints at
// the HTTP status the error maps to at the transport boundary.
type DomainError struct {
	Code    string // Error code (e.g., "TV-TODO-4040")
	Message string // Human-readable message, safe to return to clients
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
// Two DomainErrors are equal when their codes match.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// GetErrorMessage extracts the client-safe message from an error.
// For non-domain errors it returns a generic internal error message so
// that internals are never leaked to clients.
func GetErrorMessage(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return ErrInternalServer.Message
}

// ============================================================================
// Authentication Errors (AUTH)
// ============================================================================

var (
	// ErrCredentialsRequired indicates the login request was missing
	// a username or a password.
	ErrCredentialsRequired = NewDomainError("TV-AUTH-4001", "credentials required")

	// ErrInvalidCredentials indicates an unknown username or a wrong password.
	// The two cases are deliberately indistinguishable to prevent
	// username enumeration.
	ErrInvalidCredentials = NewDomainError("TV-AUTH-4010", "invalid credentials")

	// ErrTokenMissing indicates no bearer token was presented.
	ErrTokenMissing = NewDomainError("TV-AUTH-4011", "access token required")

	// ErrTokenInvalid indicates the bearer token is malformed, has a bad
	// signature, or has expired. All three cases map to forbidden.
	ErrTokenInvalid = NewDomainError("TV-AUTH-4030", "invalid token")
)

// ============================================================================
// Todo Errors (TODO)
// ============================================================================

var (
	// ErrTodoNotFound indicates the todo does not exist or belongs to
	// another user. Ownership mismatch and nonexistence are deliberately
	// indistinguishable to prevent existence leakage across users.
	ErrTodoNotFound = NewDomainError("TV-TODO-4040", "todo not found")

	// ErrTextRequired indicates the todo text was empty after trimming.
	ErrTextRequired = NewDomainError("TV-TODO-4001", "text required")

	// ErrTextTooLong indicates the todo text exceeds MaxTextLength.
	ErrTextTooLong = NewDomainError("TV-TODO-4002", "text too long")
)

// ============================================================================
// User Errors (USER)
// ============================================================================

var (
	// ErrUserNotFound indicates the requested user was not found.
	// Never surfaced directly by the login path; see ErrInvalidCredentials.
	ErrUserNotFound = NewDomainError("TV-USER-4040", "user not found")
)

// ============================================================================
// System Errors (SYS)
// ============================================================================

var (
	// ErrInternalServer indicates an internal server error.
	ErrInternalServer = NewDomainError("TV-SYS-5000", "internal server error")

	// ErrBadRequest indicates a malformed request body.
	ErrBadRequest = NewDomainError("TV-SYS-4000", "invalid request body")

	// ErrEndpointNotFound indicates an unknown route.
	ErrEndpointNotFound = NewDomainError("TV-SYS-4040", "endpoint not found")

	// ErrRateLimited indicates too many requests.
	ErrRateLimited = NewDomainError("TV-SYS-4290", "too many requests")
)
