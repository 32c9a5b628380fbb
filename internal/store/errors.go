// ABOUTME: Error taxonomy for entry store operations
// ABOUTME: Classifies failures into stable codes callers can branch on

package store

import (
	"errors"
	"fmt"

	"github.com/harper/murmure/internal/backend"
)

// ErrorCode labels the failure class of a store operation.
type ErrorCode string

const (
	CodeStorageUnavailable ErrorCode = "storage_unavailable"
	CodeQuotaExceeded      ErrorCode = "quota_exceeded"
	CodeInvalidData        ErrorCode = "invalid_data"
	CodeEntryNotFound      ErrorCode = "entry_not_found"
	CodeSerialization      ErrorCode = "serialization_error"
	CodeNetwork            ErrorCode = "network_error"
	CodeUnknown            ErrorCode = "unknown"
)

// Error is a classified store failure. Public store methods never panic
// and never surface raw backend errors; they return *Error values.
type Error struct {
	Code ErrorCode
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("store %s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("store %s: %s: %v", e.Op, e.Code, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Code extracts the error code from an error chain.
// Returns the empty code for nil and CodeUnknown for foreign errors.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeUnknown
}

// IsCritical reports whether a code warrants a user-facing notification.
func IsCritical(code ErrorCode) bool {
	return code == CodeQuotaExceeded || code == CodeStorageUnavailable
}

// classify maps a backend failure to a store error code.
func classify(err error) ErrorCode {
	switch backend.KindOf(err) {
	case backend.KindQuota:
		return CodeQuotaExceeded
	case backend.KindNetwork:
		return CodeNetwork
	case backend.KindUnavailable, backend.KindIO:
		return CodeStorageUnavailable
	default:
		return CodeUnknown
	}
}

// opError wraps a backend failure into a classified store error.
func opError(op string, err error) *Error {
	return &Error{Code: classify(err), Op: op, Err: err}
}
