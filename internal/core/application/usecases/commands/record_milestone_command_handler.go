package commands

import (
	"context"
	"time"
)

// RecordMilestoneCommandHandler handles fulfillment progress reports.
// The aggregate enforces the milestone ordering and the pickup prerequisite:
// logistics must confirm the documented product condition before "picked_up".
type RecordMilestoneCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordMilestoneCommandHandler creates a handler for milestone recording operations.
func NewRecordMilestoneCommandHandler(uowFactory OrderUoWFactory) RecordMilestoneCommandHandler {
	return RecordMilestoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the milestone recording command.
func (h *RecordMilestoneCommandHandler) Handle(ctx context.Context, cmd RecordMilestoneCommand) error {
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

	if err = aggregate.RecordMilestone(cmd.Milestone(), time.Now().UTC()); err != nil {
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
