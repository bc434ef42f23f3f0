package commands

import (
	"context"
	"time"
)

// ConfirmLogisticsReceiptCommandHandler handles logistics receipt confirmation.
type ConfirmLogisticsReceiptCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmLogisticsReceiptCommandHandler creates a handler for receipt confirmation operations.
func NewConfirmLogisticsReceiptCommandHandler(uowFactory OrderUoWFactory) ConfirmLogisticsReceiptCommandHandler {
	return ConfirmLogisticsReceiptCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the receipt confirmation command.
func (h *ConfirmLogisticsReceiptCommandHandler) Handle(ctx context.Context, cmd ConfirmLogisticsReceiptCommand) error {
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

	if err = aggregate.ConfirmLogisticsReceipt(cmd.Notes(), time.Now().UTC()); err != nil {
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
