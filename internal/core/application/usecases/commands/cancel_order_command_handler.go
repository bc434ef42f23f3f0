package commands

import (
	"context"
	"time"
)

// CancelOrderCommandHandler handles order cancellation with a full refund.
// The cancellation rules live on the aggregate: a denied cancellation surfaces
// as *order.CancellationNotAllowedError naming the reason.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory)
//	cmd, _ := NewCancelOrderCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//
//	var denied *order.CancellationNotAllowedError
//	if errors.As(err, &denied) {
//	    log.Printf("cancellation refused: %s", denied.Denial)
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Loads the order, cancels it with a full refund, and persists the updated
// aggregate within a transaction.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
