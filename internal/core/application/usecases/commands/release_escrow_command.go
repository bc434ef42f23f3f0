package commands

import (
	"errors"

	"dragonpath/internal/core/domain/model/kernel"
	"dragonpath/internal/pkg/guard"
)

var ErrReleaseEscrowCommandIsNotConstructed = errors.New(
	"ReleaseEscrowCommand must be created via NewReleaseEscrowCommand constructor",
)

// ReleaseEscrowCommand represents a buyer confirming receipt of a delivered
// order, releasing the held funds to the seller and the logistics partner.
type ReleaseEscrowCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseEscrowCommand creates a command to confirm receipt and release escrow.
func NewReleaseEscrowCommand(orderID kernel.UUID) (ReleaseEscrowCommand, error) {
	cmd := ReleaseEscrowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ReleaseEscrowCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseEscrowCommand) Validate() error {
	return c.guard.Validate(ErrReleaseEscrowCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose escrow is released.
func (c ReleaseEscrowCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ReleaseEscrowCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
