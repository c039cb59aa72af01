package booking

import (
	"errors"
	"fmt"

	"shreeji/models"
)

// ErrOrderNotFound is returned by TrackOrder when no booking matches the
// given order code. It is a plain "no order found" outcome, not a system error.
var ErrOrderNotFound = errors.New("no order found with that ID")

// ErrBookingNotFound is returned by UpdateStatus when the booking ID matches
// no document.
var ErrBookingNotFound = errors.New("booking not found")

// ErrEmptyOrderID is returned by TrackOrder for empty or whitespace-only input.
var ErrEmptyOrderID = errors.New("please provide a valid Order ID")

// ErrInvalidStatus is returned by UpdateStatus for a value outside the four
// booking statuses.
var ErrInvalidStatus = errors.New("invalid booking status")

// ValidationError reports field-level failures from decoding a booking
// submission. No side effects have occurred when it is returned.
type ValidationError struct {
	Fields models.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid booking input (%d fields)", len(e.Fields))
}

// NewValidationError wraps a non-empty field error map.
func NewValidationError(fields models.FieldErrors) error {
	return &ValidationError{Fields: fields}
}
