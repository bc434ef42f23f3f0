package order

import (
	"fmt"

	"dragonpath/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table so that
// every status change is validated instead of silently overwritten.
//
// State transitions:
//
//	PendingPayment -> PaymentReceived -> Preparing -> ReadyForPickup
//	    -> PickedUp -> InTransit -> OutForDelivery -> Delivered -> Confirmed*
//
// Any state before PickedUp may exit to Cancelled*. Delivered may enter
// Disputed. Confirmed, Cancelled, Refunded, and Disputed are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// PendingPayment is the initial status: the order exists but the buyer
	// has not paid yet.
	PendingPayment

	// PaymentReceived indicates payment was confirmed and funds are held in escrow.
	PaymentReceived

	// Preparing indicates the seller is packing the order.
	Preparing

	// ReadyForPickup indicates the package awaits logistics pickup.
	ReadyForPickup

	// PickedUp indicates logistics collected the package. Cancellation is
	// no longer possible from this point on.
	PickedUp

	// InTransit indicates the package is moving through the logistics network.
	InTransit

	// OutForDelivery indicates the package is on its final delivery leg.
	OutForDelivery

	// Delivered indicates the package reached the buyer's address.
	Delivered

	// Confirmed indicates the buyer confirmed receipt and escrow was released.
	// This is a terminal state.
	Confirmed

	// Cancelled indicates the buyer cancelled before pickup. Terminal.
	Cancelled

	// Refunded indicates a refund was issued outside the cancellation flow. Terminal.
	Refunded

	// Disputed is reachable after delivery. Dispute resolution is not modeled;
	// the state is a terminal placeholder.
	Disputed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		PendingPayment:  "pending_payment",
		PaymentReceived: "payment_received",
		Preparing:       "preparing",
		ReadyForPickup:  "ready_for_pickup",
		PickedUp:        "picked_up",
		InTransit:       "in_transit",
		OutForDelivery:  "out_for_delivery",
		Delivered:       "delivered",
		Confirmed:       "confirmed",
		Cancelled:       "cancelled",
		Refunded:        "refunded",
		Disputed:        "disputed",
	}
}

// getAllowedTransitions is the single source of truth for status changes.
// Terminal states map to an empty set.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		PendingPayment:  {PaymentReceived, Cancelled},
		PaymentReceived: {Preparing, Cancelled},
		Preparing:       {ReadyForPickup, Cancelled},
		ReadyForPickup:  {PickedUp, Cancelled},
		PickedUp:        {InTransit},
		InTransit:       {OutForDelivery},
		OutForDelivery:  {Delivered},
		Delivered:       {Confirmed, Disputed},
		Confirmed:       {},
		Cancelled:       {},
		Refunded:        {},
		Disputed:        {},
	}
}

// StatusFromString parses a wire name like "ready_for_pickup" back to a Status.
func StatusFromString(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == name && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", name),
	)
}

// String returns the wire name of the status, e.g. "ready_for_pickup".
// Implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the enumerated lifecycle states.
func (s Status) Validate() error {
	if _, ok := getAllowedTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s Status) IsTerminal() bool {
	next, ok := getAllowedTransitions()[s]
	return ok && len(next) == 0
}

// IsFulfillmentMilestone reports whether s is one of the statuses that
// logistics advances through the tracking record, Preparing through Delivered.
func (s Status) IsFulfillmentMilestone() bool {
	switch s {
	case Preparing, ReadyForPickup, PickedUp, InTransit, OutForDelivery, Delivered:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the transition table allows s -> next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the transition table allows s -> next.
//
// Returns:
//   - (next, nil) on a valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status transition",
			fmt.Errorf("%s -> %s is not allowed", s.String(), next.String()),
		)
	}

	return next, nil
}
