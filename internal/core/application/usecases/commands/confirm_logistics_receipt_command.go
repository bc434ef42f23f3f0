package commands

import (
	"errors"

	"dragonpath/internal/core/domain/model/kernel"
	"dragonpath/internal/pkg/guard"
)

var ErrConfirmLogisticsReceiptCommandIsNotConstructed = errors.New(
	"ConfirmLogisticsReceiptCommand must be created via NewConfirmLogisticsReceiptCommand constructor",
)

// ConfirmLogisticsReceiptCommand represents the logistics partner confirming
// that the received package matches its documented condition. Confirmation
// unlocks the "picked_up" milestone.
type ConfirmLogisticsReceiptCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	notes   string

	guard guard.ConstructorGuard
}

// NewConfirmLogisticsReceiptCommand creates a command to confirm package receipt.
// Notes are optional.
func NewConfirmLogisticsReceiptCommand(orderID kernel.UUID, notes string) (ConfirmLogisticsReceiptCommand, error) {
	cmd := ConfirmLogisticsReceiptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ConfirmLogisticsReceiptCommand{}, err
	}

	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmLogisticsReceiptCommand) Validate() error {
	return c.guard.Validate(ErrConfirmLogisticsReceiptCommandIsNotConstructed)
}

// OrderID returns the identifier of the inspected order.
func (c ConfirmLogisticsReceiptCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Notes returns the inspection notes left by logistics.
func (c ConfirmLogisticsReceiptCommand) Notes() string {
	return c.notes
}

func (c *ConfirmLogisticsReceiptCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
