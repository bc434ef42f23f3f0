package order

import (
	"time"

	"dragonpath/internal/core/domain/model/kernel"
	"dragonpath/internal/core/domain/model/payment"
)

// Escrow is the sub-ledger of one order's held funds. Amounts are fixed at
// order creation; the timestamps record when funds were held and released.
//
// Invariant: sellerAmount + platformFee == order subtotal, and logisticsAmount
// equals the shipping fee.
type Escrow struct {
	heldAt              *time.Time
	sellerReleasedAt    *time.Time
	logisticsReleasedAt *time.Time
	sellerAmount        kernel.Money
	logisticsAmount     kernel.Money
	platformFee         kernel.Money
}

// RestoreEscrow rebuilds an escrow sub-ledger from persistence.
func RestoreEscrow(
	heldAt, sellerReleasedAt, logisticsReleasedAt *time.Time,
	sellerAmount, logisticsAmount, platformFee kernel.Money,
) Escrow {
	return Escrow{
		heldAt:              heldAt,
		sellerReleasedAt:    sellerReleasedAt,
		logisticsReleasedAt: logisticsReleasedAt,
		sellerAmount:        sellerAmount,
		logisticsAmount:     logisticsAmount,
		platformFee:         platformFee,
	}
}

// HeldAt returns when the funds entered escrow, or nil before payment.
func (e Escrow) HeldAt() *time.Time { return e.heldAt }

// SellerReleasedAt returns when the seller amount was released, or nil.
func (e Escrow) SellerReleasedAt() *time.Time { return e.sellerReleasedAt }

// LogisticsReleasedAt returns when the logistics amount was released, or nil.
func (e Escrow) LogisticsReleasedAt() *time.Time { return e.logisticsReleasedAt }

// SellerAmount returns the payout owed to the seller (subtotal minus platform fee).
func (e Escrow) SellerAmount() kernel.Money { return e.sellerAmount }

// LogisticsAmount returns the payout owed to logistics (equals the shipping fee).
func (e Escrow) LogisticsAmount() kernel.Money { return e.logisticsAmount }

// PlatformFee returns the marketplace's cut of the subtotal.
func (e Escrow) PlatformFee() kernel.Money { return e.platformFee }

// Payment is the payment record embedded in an order: the selected method, the
// gateway transaction reference once confirmed, the escrow status track, and
// the escrow sub-ledger.
type Payment struct {
	method        payment.Method
	transactionID string
	paidAt        *time.Time
	status        PaymentStatus
	escrow        Escrow
}

// newPayment creates the initial payment record of a fresh order.
func newPayment(method payment.Method, sellerAmount, logisticsAmount, platformFee kernel.Money) Payment {
	return Payment{
		method: method,
		status: PaymentPending,
		escrow: Escrow{
			sellerAmount:    sellerAmount,
			logisticsAmount: logisticsAmount,
			platformFee:     platformFee,
		},
	}
}

// RestorePayment rebuilds a payment record from persistence.
func RestorePayment(
	method payment.Method,
	transactionID string,
	paidAt *time.Time,
	status PaymentStatus,
	escrow Escrow,
) Payment {
	return Payment{
		method:        method,
		transactionID: transactionID,
		paidAt:        paidAt,
		status:        status,
		escrow:        escrow,
	}
}

// Method returns the selected payment method.
func (p Payment) Method() payment.Method { return p.method }

// TransactionID returns the gateway transaction reference, empty until confirmed.
func (p Payment) TransactionID() string { return p.transactionID }

// PaidAt returns when the payment was confirmed, or nil.
func (p Payment) PaidAt() *time.Time { return p.paidAt }

// Status returns the escrow-side payment status.
func (p Payment) Status() PaymentStatus { return p.status }

// Escrow returns the escrow sub-ledger.
func (p Payment) Escrow() Escrow { return p.escrow }
