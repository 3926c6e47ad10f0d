package booking

import (
	"errors"
	"fmt"
)

// ErrBookingNotFound signals that a referenced booking does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// ErrEmailDelivery wraps mailer failures so handlers can report them without
// rolling back an already persisted booking.
var ErrEmailDelivery = errors.New("email delivery failed")

// ValidationError reports a missing required booking field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}
