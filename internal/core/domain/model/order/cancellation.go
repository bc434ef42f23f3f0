package order

import (
	"errors"
	"fmt"
)

// ErrCancellationNotAllowed is the unwrap target of CancellationNotAllowedError,
// so callers can classify the denial with errors.Is.
var ErrCancellationNotAllowed = errors.New("order cancellation is not allowed")

// CancellationDenial encodes why a cancellation request was denied.
type CancellationDenial int

const (
	// DenialNone means cancellation is permitted.
	DenialNone CancellationDenial = iota

	// DenialAlreadyPickedUp means logistics already collected the package.
	DenialAlreadyPickedUp

	// DenialWindowExpired means more than CancellationWindowDays have passed
	// since the order was created.
	DenialWindowExpired
)

// String returns the human-readable denial reason surfaced to buyers.
func (d CancellationDenial) String() string {
	switch d {
	case DenialAlreadyPickedUp:
		return "order cannot be cancelled after logistics pickup"
	case DenialWindowExpired:
		return fmt.Sprintf("cancellation window of %d days has expired", CancellationWindowDays)
	default:
		return ""
	}
}

// CancellationDecision is the result of the pure cancellation predicate.
// When Allowed is false, Denial carries the specific reason.
type CancellationDecision struct {
	Allowed bool
	Denial  CancellationDenial
}

// CancellationNotAllowedError is returned by Cancel when the cancellation
// predicate denies the request. It carries the specific denial reason.
type CancellationNotAllowedError struct {
	Denial CancellationDenial
}

func (e *CancellationNotAllowedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCancellationNotAllowed, e.Denial)
}

func (e *CancellationNotAllowedError) Unwrap() error {
	return ErrCancellationNotAllowed
}
