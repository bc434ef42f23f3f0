package commands

import (
	"context"
	"time"
)

// AttachConditionEvidenceCommandHandler handles seller condition documentation.
// Evidence can only be attached before logistics pickup; the aggregate rejects
// late submissions.
type AttachConditionEvidenceCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAttachConditionEvidenceCommandHandler creates a handler for evidence attachment operations.
func NewAttachConditionEvidenceCommandHandler(uowFactory OrderUoWFactory) AttachConditionEvidenceCommandHandler {
	return AttachConditionEvidenceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the evidence attachment command.
func (h *AttachConditionEvidenceCommandHandler) Handle(ctx context.Context, cmd AttachConditionEvidenceCommand) error {
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

	if err = aggregate.AttachSellerEvidence(cmd.PhotoURLs(), cmd.VideoURL(), time.Now().UTC()); err != nil {
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
