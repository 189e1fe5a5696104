package commands

import (
	"context"
	"errors"

	"freight/internal/core/ports"
)

// CancelDemandCommandHandler handles demand cancellation. Cancelling
// releases exactly the demand's volume back to the announcement's
// ledger, and only on a genuine transition: a demand that is already
// cancelled or delivered is rejected by the state machine before any
// capacity moves, so repeating the request can never release twice.
//
// Example:
//
//	handler := NewCancelDemandCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, demand.ErrAlreadyCancelled):
//	    log.Println("already cancelled, nothing released")
//	case errors.Is(err, demand.ErrAlreadyDelivered):
//	    log.Println("delivered demands cannot be cancelled")
//	case err != nil:
//	    log.Printf("cancellation failed: %v", err)
//	}
type CancelDemandCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelDemandCommandHandler creates a handler for demand
// cancellation operations. Requires a UoWFactory because the demand and
// the announcement ledger change together.
func NewCancelDemandCommandHandler(uowFactory UoWFactory) CancelDemandCommandHandler {
	return CancelDemandCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
//
// Verifies ownership, transitions the demand to cancelled, credits its
// volume back to the ledger and persists both aggregates in one
// transaction. Lost version races on the announcement are retried
// against fresh state up to maxLedgerRetries times; each retry re-reads
// the demand too, so a cancellation that already committed surfaces as
// ErrAlreadyCancelled instead of releasing again.
func (h *CancelDemandCommandHandler) Handle(ctx context.Context, cmd CancelDemandCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var err error
	for range maxLedgerRetries {
		err = h.cancelAndRelease(ctx, cmd)
		if !errors.Is(err, ports.ErrVersionConflict) {
			return err
		}
	}

	return err
}

func (h *CancelDemandCommandHandler) cancelAndRelease(ctx context.Context, cmd CancelDemandCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	announcementRepo := uow.AnnouncementRepository()
	demandRepo := uow.DemandRepository()

	existing, err := demandRepo.Get(ctx, cmd.DemandID())
	if err != nil {
		return err
	}

	if !existing.IsOwnedBy(cmd.ShipperID()) {
		return ErrNotOwner
	}

	if err = existing.Cancel(); err != nil {
		return err
	}

	offer, err := announcementRepo.Get(ctx, existing.AnnouncementID())
	if err != nil {
		return err
	}

	if err = offer.Release(existing.Volume()); err != nil {
		return err
	}

	if err = demandRepo.Update(ctx, existing); err != nil {
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
