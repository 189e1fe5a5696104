package commands

import (
	"context"
	"time"
)

// ActivateDueAnnouncementsCommandHandler sweeps pending announcements
// whose start date has arrived into active status. Offers the driver
// already started or cancelled by hand are simply not in the due set.
type ActivateDueAnnouncementsCommandHandler struct {
	uowFactory AnnouncementUoWFactory
}

// NewActivateDueAnnouncementsCommandHandler creates a handler for the
// periodic activation sweep.
func NewActivateDueAnnouncementsCommandHandler(uowFactory AnnouncementUoWFactory) ActivateDueAnnouncementsCommandHandler {
	return ActivateDueAnnouncementsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activation sweep.
// Retrieves every pending announcement with a due start date, activates
// each and persists the batch within a single transaction.
func (h ActivateDueAnnouncementsCommandHandler) Handle(ctx context.Context, cmd ActivateDueAnnouncementsCommand) error {
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

	due, err := announcementRepo.GetAllPendingDue(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, offer := range due {
		if err = offer.Start(); err != nil {
			return err
		}
		if err = announcementRepo.Update(ctx, offer); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
