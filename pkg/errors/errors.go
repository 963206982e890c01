// Package errors defines the sentinel error taxonomy of the resolution
// pipelines and the classification helpers that drive retry policy.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrTransientStore marks a store failure that is worth retrying
	// (timeout, connection reset, serialization conflict).
	ErrTransientStore = errors.New("transient store error")
	// ErrMalformedReference marks an entity-id reference in a posting whose
	// wire shape could not be coerced to a canonical id.
	ErrMalformedReference = errors.New("malformed entity reference")
	// ErrConfiguration marks an invalid or incomplete configuration. Fatal
	// at startup, before any phase begins.
	ErrConfiguration = errors.New("configuration error")
	// ErrCheckpointCorrupt marks a checkpoint value that could not be
	// parsed for its phase.
	ErrCheckpointCorrupt = errors.New("corrupt checkpoint")
)

// Transient wraps err as a retryable store error.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrTransientStore, err)
}

// Configf formats a fatal configuration error.
func Configf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// MalformedRef formats a malformed-reference error for a single posting id.
func MalformedRef(token string, raw string) error {
	return fmt.Errorf("%w: token %q id %q", ErrMalformedReference, token, raw)
}

// IsTransient reports whether err should enter the bounded retry loop.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransientStore)
}

// IsConfiguration reports whether err is a startup configuration failure.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
