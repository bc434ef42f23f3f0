package commands

import (
	"errors"

	"dragonpath/internal/core/domain/model/kernel"
	"dragonpath/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
	ErrTransactionIDIsRequired = errors.New("transaction id is required")
)

// ConfirmPaymentCommand represents a successful gateway charge notification
// for a pending order: the funds are to be moved into escrow.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	transactionID string

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to confirm an order's payment.
// Validates that the order ID is valid and the transaction reference is present.
func NewConfirmPaymentCommand(orderID kernel.UUID, transactionID string) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTransactionID(transactionID),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c ConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TransactionID returns the gateway transaction reference.
func (c ConfirmPaymentCommand) TransactionID() string {
	return c.transactionID
}

func (c *ConfirmPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmPaymentCommand) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return ErrTransactionIDIsRequired
	}

	c.transactionID = transactionID
	return nil
}
