package commands

import (
	"context"
	"time"

	"dragonpath/internal/core/domain/model/order"
	"dragonpath/internal/core/domain/model/payment"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves the payment method, derives the financial split, and creates the
// order in "pending_payment" status with its funds not yet charged.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), buyerID, sellerID, items, address, "click")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Resolves the named payment method against the catalog and creates the order
// in "pending_payment" status. Uses a transaction to ensure the order is
// properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	method, err := payment.MethodFromID(cmd.PaymentMethodID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.BuyerID(),
		cmd.SellerID(),
		cmd.Items(),
		cmd.Address(),
		method,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
