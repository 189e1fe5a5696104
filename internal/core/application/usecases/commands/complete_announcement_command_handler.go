package commands

import (
	"context"
	"time"
)

// CompleteAnnouncementCommandHandler handles trip completion
// (active -> completed). The end date is stamped when none was declared.
// Reserved capacity is not released: the packages travelled, the space
// was consumed.
type CompleteAnnouncementCommandHandler struct {
	uowFactory AnnouncementUoWFactory
}

// NewCompleteAnnouncementCommandHandler creates a handler for
// announcement completion operations.
func NewCompleteAnnouncementCommandHandler(uowFactory AnnouncementUoWFactory) CompleteAnnouncementCommandHandler {
	return CompleteAnnouncementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Verifies the acting driver owns the announcement, transitions it to
// completed and persists it within a transaction.
func (h *CompleteAnnouncementCommandHandler) Handle(ctx context.Context, cmd CompleteAnnouncementCommand) error {
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

	announcementRepo := uow.AnnouncementRepository()

	offer, err := announcementRepo.Get(ctx, cmd.AnnouncementID())
	if err != nil {
		return err
	}

	if !offer.IsOwnedBy(cmd.DriverID()) {
		return ErrNotOwner
	}

	if err = offer.Complete(time.Now()); err != nil {
		return err
	}

	if err = announcementRepo.Update(ctx, offer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
