package service

import (
	"errors"
	"fmt"

	"github.com/dinewise/pos/internal/storage"
)

// Error taxonomy for the service layer. The HTTP layer maps these onto
// status codes: ErrInvalidInput and ErrConflict become 400, ErrNotFound
// becomes 404, anything else becomes 500.
var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput means the request itself is malformed or violates a
	// value constraint (negative discount, bad payment method, ...).
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict means the request is well-formed but the entity's current
	// state forbids it (bill already paid, item already cancelled, ...).
	ErrConflict = errors.New("conflict")
)

// invalidf wraps ErrInvalidInput with a caller-facing message.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

// conflictf wraps ErrConflict with a caller-facing message.
func conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrConflict}, args...)...)
}

// notFoundf wraps ErrNotFound with a caller-facing message.
func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
}

// mapStoreErr converts storage sentinels into service sentinels so handlers
// only ever see the service taxonomy.
func mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, storage.ErrDuplicate):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return err
	}
}
