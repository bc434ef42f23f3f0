package commands

import (
	"context"
	"time"
)

// ReleaseDueEscrowsCommandHandler runs the scheduled escrow auto-release.
// Orders delivered more than the configured window ago, still awaiting buyer
// confirmation, are confirmed automatically so sellers are not held hostage
// by inactive buyers.
type ReleaseDueEscrowsCommandHandler struct {
	uowFactory       OrderUoWFactory
	autoReleaseAfter time.Duration
}

// NewReleaseDueEscrowsCommandHandler creates a handler for the auto-release sweep.
// autoReleaseAfter is how long after delivery an unconfirmed order's escrow
// is released automatically.
func NewReleaseDueEscrowsCommandHandler(
	uowFactory OrderUoWFactory,
	autoReleaseAfter time.Duration,
) ReleaseDueEscrowsCommandHandler {
	return ReleaseDueEscrowsCommandHandler{
		uowFactory:       uowFactory,
		autoReleaseAfter: autoReleaseAfter,
	}
}

// Handle processes the auto-release sweep.
// Scans for orders delivered at or before the cutoff and releases each one's
// escrow within a single transaction. An order that cannot be released stops
// the sweep and rolls back; the next run retries.
func (h *ReleaseDueEscrowsCommandHandler) Handle(ctx context.Context, cmd ReleaseDueEscrowsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	cutoff := now.Add(-h.autoReleaseAfter)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	dueOrders, err := orderRepo.GetAllDeliveredBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, aggregate := range dueOrders {
		if err = aggregate.ReleaseEscrow(now); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
