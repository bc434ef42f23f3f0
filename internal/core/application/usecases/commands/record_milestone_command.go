package commands

import (
	"errors"

	"dragonpath/internal/core/domain/model/kernel"
	"dragonpath/internal/core/domain/model/order"
	"dragonpath/internal/pkg/guard"
)

var ErrRecordMilestoneCommandIsNotConstructed = errors.New(
	"RecordMilestoneCommand must be created via NewRecordMilestoneCommand constructor",
)

// RecordMilestoneCommand represents a fulfillment progress report for an order:
// the seller preparing the package, logistics picking it up and moving it, and
// finally delivery to the buyer.
type RecordMilestoneCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	milestone order.Status

	guard guard.ConstructorGuard
}

// NewRecordMilestoneCommand creates a command to record a fulfillment milestone.
// The milestone must be one of the fulfillment statuses, "preparing" through
// "delivered"; the ordering rules are enforced by the aggregate.
func NewRecordMilestoneCommand(orderID kernel.UUID, milestone order.Status) (RecordMilestoneCommand, error) {
	cmd := RecordMilestoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMilestone(milestone),
	); err != nil {
		return RecordMilestoneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordMilestoneCommand) Validate() error {
	return c.guard.Validate(ErrRecordMilestoneCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being progressed.
func (c RecordMilestoneCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Milestone returns the fulfillment status being recorded.
func (c RecordMilestoneCommand) Milestone() order.Status {
	return c.milestone
}

func (c *RecordMilestoneCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordMilestoneCommand) setMilestone(milestone order.Status) error {
	if err := milestone.Validate(); err != nil {
		return err
	}

	c.milestone = milestone
	return nil
}
