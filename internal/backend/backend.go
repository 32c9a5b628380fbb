// ABOUTME: Persistent key-value backend abstraction with typed error variants
// ABOUTME: Defines the contract the entry store persists through

package backend

import (
	"errors"
	"fmt"
)

// Backend is a durable string-keyed, string-valued store.
// Implementations may fail on any call; callers classify failures
// through the typed variants below rather than message inspection.
type Backend interface {
	// GetItem returns the value for key, or ErrNotFound when absent.
	GetItem(key string) (string, error)

	// SetItem durably writes value under key, overwriting any prior value.
	SetItem(key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(key string) error
}

// ErrNotFound is returned by GetItem when the key has no value.
var ErrNotFound = errors.New("backend: key not found")

// Kind classifies a backend failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnavailable
	KindQuota
	KindNetwork
	KindIO
)

// String returns the kind's label.
func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindQuota:
		return "quota"
	case KindNetwork:
		return "network"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is a classified backend failure.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("backend %s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from an error chain.
// Returns KindUnknown for errors that are not backend failures.
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnknown
}
