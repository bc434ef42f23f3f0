package order

import (
	"fmt"

	"dragonpath/internal/pkg/errs"
)

// PaymentStatus tracks the escrow side of an order independently from the
// fulfillment status, so a refund can be issued while the shipment record is
// preserved for audit.
//
// Transitions:
//
//	Pending -> HeldInEscrow -> ReleasedToSeller / ReleasedToLogistics
//	Pending / HeldInEscrow -> Refunded
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending indicates no payment has been confirmed yet.
	PaymentPending

	// PaymentHeldInEscrow indicates confirmed funds held by the platform.
	PaymentHeldInEscrow

	// PaymentReleasedToSeller indicates escrow was paid out after buyer confirmation.
	PaymentReleasedToSeller

	// PaymentReleasedToLogistics indicates the shipping portion was paid out.
	PaymentReleasedToLogistics

	// PaymentRefunded indicates the buyer was refunded in full.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown:       "unknown",
		PaymentPending:             "pending",
		PaymentHeldInEscrow:        "held_in_escrow",
		PaymentReleasedToSeller:    "released_to_seller",
		PaymentReleasedToLogistics: "released_to_logistics",
		PaymentRefunded:            "refunded",
	}
}

func getAllowedPaymentTransitions() map[PaymentStatus][]PaymentStatus {
	return map[PaymentStatus][]PaymentStatus{
		PaymentPending:             {PaymentHeldInEscrow, PaymentRefunded},
		PaymentHeldInEscrow:        {PaymentReleasedToSeller, PaymentReleasedToLogistics, PaymentRefunded},
		PaymentReleasedToSeller:    {},
		PaymentReleasedToLogistics: {},
		PaymentRefunded:            {},
	}
}

// String returns the wire name of the payment status, e.g. "held_in_escrow".
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the payment status is one of the enumerated values.
func (s PaymentStatus) Validate() error {
	if _, ok := getAllowedPaymentTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// TransitionTo returns next if the escrow transition table allows s -> next.
func (s PaymentStatus) TransitionTo(next PaymentStatus) (PaymentStatus, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	for _, allowed := range getAllowedPaymentTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}

	return 0, errs.NewValueIsInvalidErrorWithCause(
		"payment status transition",
		fmt.Errorf("%s -> %s is not allowed", s.String(), next.String()),
	)
}
