package commands

import (
	"context"
	"time"
)

// ChangeDemandStatusCommandHandler handles the driver-side lifecycle of
// a demand: acceptance, transit and delivery. None of these steps touch
// the ledger — a delivered demand's capacity stays consumed for the
// remainder of the trip.
//
// Example:
//
//	handler := NewChangeDemandStatusCommandHandler(uowFactory)
//	cmd, _ := NewChangeDemandStatusCommand(demandID, driverID, TransitionAccept)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
type ChangeDemandStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeDemandStatusCommandHandler creates a handler for demand
// lifecycle operations. Requires a UoWFactory: the announcement is read
// in the same transaction to verify the acting driver owns it.
func NewChangeDemandStatusCommandHandler(uowFactory UoWFactory) ChangeDemandStatusCommandHandler {
	return ChangeDemandStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Verifies the acting driver owns the demand's announcement, applies the
// transition through the state machine and persists the demand. Illegal
// transitions are rejected by the aggregate.
func (h *ChangeDemandStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDemandStatusCommand) error {
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

	demandRepo := uow.DemandRepository()

	existing, err := demandRepo.Get(ctx, cmd.DemandID())
	if err != nil {
		return err
	}

	offer, err := uow.AnnouncementRepository().Get(ctx, existing.AnnouncementID())
	if err != nil {
		return err
	}

	if !offer.IsOwnedBy(cmd.DriverID()) {
		return ErrNotOwner
	}

	switch cmd.Transition() {
	case TransitionAccept:
		err = existing.Accept()
	case TransitionStartTransit:
		err = existing.StartTransit()
	case TransitionDeliver:
		err = existing.Deliver(time.Now())
	default:
		err = cmd.Transition().Validate()
	}
	if err != nil {
		return err
	}

	if err = demandRepo.Update(ctx, existing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
