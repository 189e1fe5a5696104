package commands

import (
	"context"
)

// StartAnnouncementCommandHandler handles trip activation
// (pending -> active). No capacity effect.
type StartAnnouncementCommandHandler struct {
	uowFactory AnnouncementUoWFactory
}

// NewStartAnnouncementCommandHandler creates a handler for announcement
// activation operations.
func NewStartAnnouncementCommandHandler(uowFactory AnnouncementUoWFactory) StartAnnouncementCommandHandler {
	return StartAnnouncementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activation command.
// Verifies the acting driver owns the announcement, transitions it to
// active and persists it within a transaction.
func (h *StartAnnouncementCommandHandler) Handle(ctx context.Context, cmd StartAnnouncementCommand) error {
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

	if err = offer.Start(); err != nil {
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
