package commands

import (
	"context"
	"errors"

	"freight/internal/core/ports"
)

// DeleteAnnouncementCommandHandler handles offer withdrawal with a full
// cascade: every demand still holding capacity on the announcement is
// cancelled and its volume released before the announcement record is
// removed, all in one transaction. Demands already in a terminal state
// are untouched, which keeps the operation safe to re-run after a
// partial failure — the second run cancels only what the first did not
// commit.
//
// Example:
//
//	handler := NewDeleteAnnouncementCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("announcement already gone")
//	case errors.Is(err, ErrNotOwner):
//	    log.Println("only the publishing driver may delete the offer")
//	case err != nil:
//	    log.Printf("deletion failed: %v", err)
//	}
type DeleteAnnouncementCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteAnnouncementCommandHandler creates a handler for announcement
// deletion operations. Requires a UoWFactory because the cascade touches
// both aggregates.
func NewDeleteAnnouncementCommandHandler(uowFactory UoWFactory) DeleteAnnouncementCommandHandler {
	return DeleteAnnouncementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
//
// Verifies ownership, cancels each demand still holding capacity while
// releasing its volume, then writes the drained ledger with a version
// guard and removes the record. The guarded write makes the cascade
// collide with any demand submitted concurrently: the loser re-reads and
// the new demand is either cancelled by the retry or its reservation
// rejected, never silently orphaned. Lost races are retried up to
// maxLedgerRetries times.
func (h *DeleteAnnouncementCommandHandler) Handle(ctx context.Context, cmd DeleteAnnouncementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var err error
	for range maxLedgerRetries {
		err = h.cascadeAndDelete(ctx, cmd)
		if !errors.Is(err, ports.ErrVersionConflict) {
			return err
		}
	}

	return err
}

func (h *DeleteAnnouncementCommandHandler) cascadeAndDelete(ctx context.Context, cmd DeleteAnnouncementCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	announcementRepo := uow.AnnouncementRepository()
	demandRepo := uow.DemandRepository()

	offer, err := announcementRepo.Get(ctx, cmd.AnnouncementID())
	if err != nil {
		return err
	}

	if !offer.IsOwnedBy(cmd.DriverID()) {
		return ErrNotOwner
	}

	holding, err := demandRepo.GetActiveByAnnouncement(ctx, cmd.AnnouncementID())
	if err != nil {
		return err
	}

	for _, d := range holding {
		if err = d.Cancel(); err != nil {
			return err
		}
		if err = offer.Release(d.Volume()); err != nil {
			return err
		}
		if err = demandRepo.Update(ctx, d); err != nil {
			return err
		}
	}

	if err = announcementRepo.Update(ctx, offer); err != nil {
		return err
	}

	if err = announcementRepo.Delete(ctx, cmd.AnnouncementID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
