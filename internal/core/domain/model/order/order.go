package order

import (
	"errors"
	"time"

	"dragonpath/internal/core/domain/model/kernel"
	"dragonpath/internal/core/domain/model/payment"
	"dragonpath/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLineItemsAreRequired is returned by NewOrder when the line item list is empty.
	ErrLineItemsAreRequired = errors.New("at least one line item is required")

	// ErrOrderNotYetDelivered is returned by ReleaseEscrow before delivery.
	ErrOrderNotYetDelivered = errors.New("order must be delivered before escrow can be released")

	// ErrConditionNotConfirmed is returned by RecordMilestone when logistics tries
	// to record pickup before confirming the documented product condition.
	ErrConditionNotConfirmed = errors.New("logistics must confirm product condition before pickup")
)

// Order is the aggregate root of one buyer's purchase from one seller. It owns
// the lifecycle status, the payment and escrow record, the product-condition
// documentation, and the milestone tracking record.
//
// Invariants:
//   - total == subtotal + shippingFee; subtotal == Σ(line price × quantity)
//   - escrow sellerAmount + platformFee == subtotal; logisticsAmount == shippingFee
//   - status transitions follow the Status transition table; the tracking record
//     is append-only with non-decreasing timestamps
//   - orders are never deleted; terminal records are retained for audit
//
// All mutation happens through the methods below. Domain methods take the
// current time as a parameter so callers control the clock.
type Order struct {
	id        kernel.UUID
	buyerID   kernel.UUID
	sellerID  kernel.UUID
	createdAt time.Time

	items       []LineItem
	subtotal    kernel.Money
	shippingFee kernel.Money
	total       kernel.Money
	address     Address

	status    Status
	payment   Payment
	condition Condition
	tracking  Tracking

	deliveredAt      *time.Time
	buyerConfirmedAt *time.Time
	cancelledAt      *time.Time
	refundedAt       *time.Time

	isConstructed bool
}

// NewOrder creates a new order in PendingPayment with payment status Pending.
//
// It validates the parties, the line items (non-empty, quantity >= 1, price
// captured as non-negative Money), the address, and the payment method, then
// derives the financial split: subtotal, tiered shipping fee, total, platform
// fee, and seller payout.
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	items []LineItem,
	address Address,
	method payment.Method,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		buyerID.Validate(),
		sellerID.Validate(),
		validateLineItems(items),
		address.Validate(),
		method.Validate(),
	); err != nil {
		return nil, err
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		subtotal = subtotal.Add(item.Total())
	}

	shippingFee := ShippingFeeFor(subtotal)
	platformFee := PlatformFeeFor(subtotal)
	sellerAmount, err := subtotal.Sub(platformFee)
	if err != nil {
		return nil, err
	}

	orderItems := make([]LineItem, len(items))
	copy(orderItems, items)

	return &Order{
		id:            id,
		buyerID:       buyerID,
		sellerID:      sellerID,
		createdAt:     now,
		items:         orderItems,
		subtotal:      subtotal,
		shippingFee:   shippingFee,
		total:         subtotal.Add(shippingFee),
		address:       address,
		status:        PendingPayment,
		payment:       newPayment(method, sellerAmount, shippingFee, platformFee),
		isConstructed: true,
	}, nil
}

// RestoreOrderParams carries the full persisted state of an order.
type RestoreOrderParams struct {
	ID               kernel.UUID
	BuyerID          kernel.UUID
	SellerID         kernel.UUID
	CreatedAt        time.Time
	Items            []LineItem
	Subtotal         kernel.Money
	ShippingFee      kernel.Money
	Total            kernel.Money
	Address          Address
	Status           Status
	Payment          Payment
	Condition        Condition
	Tracking         Tracking
	DeliveredAt      *time.Time
	BuyerConfirmedAt *time.Time
	CancelledAt      *time.Time
	RefundedAt       *time.Time
}

// RestoreOrder reconstructs an order from persistence without re-deriving its
// financial split. The stored status must be a valid lifecycle state.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.BuyerID.Validate(),
		p.SellerID.Validate(),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:               p.ID,
		buyerID:          p.BuyerID,
		sellerID:         p.SellerID,
		createdAt:        p.CreatedAt,
		items:            p.Items,
		subtotal:         p.Subtotal,
		shippingFee:      p.ShippingFee,
		total:            p.Total,
		address:          p.Address,
		status:           p.Status,
		payment:          p.Payment,
		condition:        p.Condition,
		tracking:         p.Tracking,
		deliveredAt:      p.DeliveredAt,
		buyerConfirmedAt: p.BuyerConfirmedAt,
		cancelledAt:      p.CancelledAt,
		refundedAt:       p.RefundedAt,
		isConstructed:    true,
	}, nil
}

func validateLineItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrLineItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// BuyerID returns the purchasing user's identifier.
func (o *Order) BuyerID() kernel.UUID { return o.buyerID }

// SellerID returns the selling user's identifier.
func (o *Order) SellerID() kernel.UUID { return o.sellerID }

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Items returns a copy of the ordered line items.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// Subtotal returns the sum of line totals.
func (o *Order) Subtotal() kernel.Money { return o.subtotal }

// ShippingFee returns the tiered shipping fee.
func (o *Order) ShippingFee() kernel.Money { return o.shippingFee }

// Total returns subtotal plus shipping fee.
func (o *Order) Total() kernel.Money { return o.total }

// Address returns the shipping destination.
func (o *Order) Address() Address { return o.address }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Payment returns the payment and escrow record.
func (o *Order) Payment() Payment { return o.payment }

// Condition returns the product-condition documentation record.
func (o *Order) Condition() Condition { return o.condition }

// Tracking returns the milestone tracking record.
func (o *Order) Tracking() Tracking { return o.tracking }

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// BuyerConfirmedAt returns when the buyer confirmed receipt, or nil.
func (o *Order) BuyerConfirmedAt() *time.Time { return o.buyerConfirmedAt }

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

// RefundedAt returns when the refund was issued, or nil.
func (o *Order) RefundedAt() *time.Time { return o.refundedAt }

// ConfirmPayment records a successful gateway charge: it stores the transaction
// reference, moves the funds into escrow, advances the order to PaymentReceived,
// and appends the matching milestone.
//
// Repeated confirmation is rejected as an invalid transition rather than
// overwriting the escrow record.
func (o *Order) ConfirmPayment(transactionID string, now time.Time) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transaction id")
	}

	newStatus, err := o.status.TransitionTo(PaymentReceived)
	if err != nil {
		return err
	}

	newPaymentStatus, err := o.payment.status.TransitionTo(PaymentHeldInEscrow)
	if err != nil {
		return err
	}

	milestone, err := NewMilestone(PaymentReceived, now)
	if err != nil {
		return err
	}
	if err = o.tracking.append(milestone); err != nil {
		return err
	}

	paidAt := now
	o.payment.transactionID = transactionID
	o.payment.paidAt = &paidAt
	o.payment.status = newPaymentStatus
	o.payment.escrow.heldAt = &paidAt
	o.status = newStatus
	return nil
}

// CanCancel is the pure cancellation predicate: cancellation is denied once a
// PickedUp milestone exists, or once more than CancellationWindowDays whole
// days have passed since creation. It has no side effects.
func (o *Order) CanCancel(now time.Time) CancellationDecision {
	if o.tracking.HasMilestone(PickedUp) {
		return CancellationDecision{Denial: DenialAlreadyPickedUp}
	}

	daysSinceOrder := int(now.Sub(o.createdAt).Hours() / 24)
	if daysSinceOrder > CancellationWindowDays {
		return CancellationDecision{Denial: DenialWindowExpired}
	}

	return CancellationDecision{Allowed: true}
}

// Cancel cancels the order with a full refund. The order moves to the terminal
// Cancelled status and the payment track to Refunded; both timestamps are set.
// The shipment record is preserved for audit.
func (o *Order) Cancel(now time.Time) error {
	if decision := o.CanCancel(now); !decision.Allowed {
		return &CancellationNotAllowedError{Denial: decision.Denial}
	}

	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	newPaymentStatus, err := o.payment.status.TransitionTo(PaymentRefunded)
	if err != nil {
		return err
	}

	cancelledAt := now
	o.status = newStatus
	o.payment.status = newPaymentStatus
	o.cancelledAt = &cancelledAt
	o.refundedAt = &cancelledAt
	return nil
}

// RecordMilestone advances fulfillment by one step, Preparing through Delivered,
// and appends the milestone to the tracking record. The PickedUp milestone
// additionally requires a logistics condition confirmation. Delivered stamps
// the delivery timestamp.
func (o *Order) RecordMilestone(milestone Status, now time.Time) error {
	if !milestone.IsFulfillmentMilestone() {
		return errs.NewValueIsInvalidError(milestone.String() + " is not a fulfillment milestone")
	}

	if milestone == PickedUp && !o.condition.IsConfirmedByLogistics() {
		return ErrConditionNotConfirmed
	}

	newStatus, err := o.status.TransitionTo(milestone)
	if err != nil {
		return err
	}

	m, err := NewMilestone(milestone, now)
	if err != nil {
		return err
	}
	if err = o.tracking.append(m); err != nil {
		return err
	}

	o.status = newStatus
	if milestone == Delivered {
		deliveredAt := now
		o.deliveredAt = &deliveredAt
	}
	return nil
}

// ReleaseEscrow confirms buyer receipt and releases the held funds: the order
// moves to Confirmed and both the seller and logistics portions are released
// atomically. Calling it on an already Confirmed order is a no-op. Any earlier
// status fails with ErrOrderNotYetDelivered.
func (o *Order) ReleaseEscrow(now time.Time) error {
	if o.status == Confirmed {
		return nil
	}
	if o.status != Delivered {
		return ErrOrderNotYetDelivered
	}

	newStatus, err := o.status.TransitionTo(Confirmed)
	if err != nil {
		return err
	}

	newPaymentStatus, err := o.payment.status.TransitionTo(PaymentReleasedToSeller)
	if err != nil {
		return err
	}

	releasedAt := now
	o.status = newStatus
	o.buyerConfirmedAt = &releasedAt
	o.payment.status = newPaymentStatus
	o.payment.escrow.sellerReleasedAt = &releasedAt
	o.payment.escrow.logisticsReleasedAt = &releasedAt
	return nil
}

// AttachSellerEvidence records seller-submitted condition documentation:
// photo URLs and an optional packing video. Evidence can only be attached
// before logistics pickup and never on a terminal order.
func (o *Order) AttachSellerEvidence(photoURLs []string, videoURL string, now time.Time) error {
	if len(photoURLs) == 0 && videoURL == "" {
		return errs.NewValueIsRequiredError("condition evidence")
	}
	if o.status.IsTerminal() || o.tracking.HasMilestone(PickedUp) {
		return errs.NewValueIsInvalidError("condition evidence cannot be attached after pickup")
	}

	for _, url := range photoURLs {
		o.condition.sellerPhotos = append(o.condition.sellerPhotos, NewEvidencePhoto(url, now))
	}
	if videoURL != "" {
		o.condition.sellerVideoURL = videoURL
	}
	return nil
}

// ConfirmLogisticsReceipt records that logistics inspected the package and
// confirmed its documented condition, unlocking the PickedUp milestone.
func (o *Order) ConfirmLogisticsReceipt(notes string, now time.Time) error {
	if o.status.IsTerminal() || o.tracking.HasMilestone(PickedUp) {
		return errs.NewValueIsInvalidError("condition cannot be confirmed after pickup")
	}

	confirmedAt := now
	o.condition.logisticsConfirmedAt = &confirmedAt
	o.condition.logisticsNotes = notes
	return nil
}
