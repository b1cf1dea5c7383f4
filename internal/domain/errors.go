package domain

import (
	"errors"
	"fmt"
)

// Recoverable-by-caller error taxonomy. Mutating operations return these
// synchronously; nothing is retried inside the core.
var (
	// ErrNotFound signals that the referenced booking, payment, or profile
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a failed status precondition: the booking was
	// already transitioned by a concurrent request or is in an ineligible
	// state. Callers may re-fetch and retry.
	ErrConflict = errors.New("booking status conflict")

	// ErrUnauthorized signals that the acting principal lacks the required
	// permission or role. Deliberately generic.
	ErrUnauthorized = errors.New("insufficient permission")
)

// ValidationError rejects malformed or out-of-range input before any state
// change, naming the violated field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
