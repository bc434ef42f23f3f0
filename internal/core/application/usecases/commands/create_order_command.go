package commands

import (
	"errors"

	"dragonpath/internal/core/domain/model/kernel"
	"dragonpath/internal/core/domain/model/order"
	"dragonpath/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
)

// CreateOrderCommand represents a request to place a new marketplace order.
// Encapsulates the parties, the purchased line items, the shipping address,
// and the chosen payment method.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), buyerID, sellerID, items, address, "payme")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	buyerID         kernel.UUID
	sellerID        kernel.UUID
	items           []order.LineItem
	address         order.Address
	paymentMethodID string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the parties, the line items, the address, and that a payment
// method was named. The payment method itself is resolved by the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	items []order.LineItem,
	address order.Address,
	paymentMethodID string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setBuyerID(buyerID),
		orderCommand.setSellerID(sellerID),
		orderCommand.setItems(items),
		orderCommand.setAddress(address),
		orderCommand.setPaymentMethodID(paymentMethodID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the purchasing user's identifier.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// SellerID returns the selling user's identifier.
func (c CreateOrderCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// Items returns the purchased line items.
func (c CreateOrderCommand) Items() []order.LineItem {
	return c.items
}

// Address returns the shipping destination.
func (c CreateOrderCommand) Address() order.Address {
	return c.address
}

// PaymentMethodID returns the identifier of the chosen payment method.
func (c CreateOrderCommand) PaymentMethodID() string {
	return c.paymentMethodID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	c.sellerID = sellerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return order.ErrLineItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setAddress(address order.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setPaymentMethodID(paymentMethodID string) error {
	if paymentMethodID == "" {
		return ErrPaymentMethodIsRequired
	}

	c.paymentMethodID = paymentMethodID
	return nil
}
