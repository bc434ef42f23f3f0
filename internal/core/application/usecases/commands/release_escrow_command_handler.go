package commands

import (
	"context"
	"time"
)

// ReleaseEscrowCommandHandler handles buyer receipt confirmation.
// Moves the order to "confirmed" and releases both the seller and logistics
// portions of the escrow atomically. Confirming an already confirmed order
// is a no-op; confirming before delivery fails with ErrOrderNotYetDelivered.
type ReleaseEscrowCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReleaseEscrowCommandHandler creates a handler for escrow release operations.
func NewReleaseEscrowCommandHandler(uowFactory OrderUoWFactory) ReleaseEscrowCommandHandler {
	return ReleaseEscrowCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the escrow release command.
func (h *ReleaseEscrowCommandHandler) Handle(ctx context.Context, cmd ReleaseEscrowCommand) error {
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

	if err = aggregate.ReleaseEscrow(time.Now().UTC()); err != nil {
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
