package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/demand"
	"freight/internal/core/ports"
)

// ErrPackageDoesNotFit is returned when a package in the manifest
// exceeds the announcement's maximum admissible dimensions.
var ErrPackageDoesNotFit = errors.New(
	"package does not fit within the announcement's maximum dimensions")

// maxLedgerRetries bounds how often a ledger command re-reads the
// announcement after losing a version race. Each retry re-runs the full
// capacity check against fresh state, so a retried request can still end
// in ErrInsufficientCapacity — that rejection is terminal, not retried.
const maxLedgerRetries = 3

// CreateDemandCommandHandler handles the business logic for submitting
// capacity demands. The demand row and the announcement's ledger debit
// are committed in one transaction, guarded by the announcement's
// version, so concurrent shippers can never jointly overbook the
// remaining capacity.
//
// Example:
//
//	handler := NewCreateDemandCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("announcement does not exist")
//	case errors.Is(err, announcement.ErrAnnouncementClosed):
//	    log.Println("offer no longer accepts demands")
//	case errors.Is(err, announcement.ErrInsufficientCapacity):
//	    log.Println("manifest volume exceeds remaining capacity")
//	case err != nil:
//	    log.Printf("demand submission failed: %v", err)
//	}
type CreateDemandCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateDemandCommandHandler creates a handler for demand submission
// operations. Requires a UoWFactory because the demand and the
// announcement ledger change together.
func NewCreateDemandCommandHandler(uowFactory UoWFactory) CreateDemandCommandHandler {
	return CreateDemandCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the demand submission command.
//
// Reads the announcement, checks every package against its dimension
// limits, debits the manifest volume from the ledger and persists both
// aggregates. When the version-guarded announcement update reports a
// concurrent modification, the whole read-decide-write cycle is retried
// against fresh state, up to maxLedgerRetries times. Business
// rejections (not found, closed, does not fit, insufficient capacity)
// are returned immediately and never retried.
func (h *CreateDemandCommandHandler) Handle(ctx context.Context, cmd CreateDemandCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var err error
	for range maxLedgerRetries {
		err = h.reserveAndPersist(ctx, cmd)
		if !errors.Is(err, ports.ErrVersionConflict) {
			return err
		}
	}

	return err
}

func (h *CreateDemandCommandHandler) reserveAndPersist(ctx context.Context, cmd CreateDemandCommand) error {
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

	for _, p := range cmd.Packages() {
		if !offer.FitsPackage(p.Dimensions()) {
			return ErrPackageDoesNotFit
		}
	}

	newDemand, err := demand.NewDemand(
		cmd.DemandID(),
		cmd.ShipperID(),
		cmd.AnnouncementID(),
		cmd.Packages(),
	)
	if err != nil {
		return err
	}

	if err = offer.Reserve(newDemand.Volume()); err != nil {
		return err
	}

	if err = demandRepo.Add(ctx, newDemand); err != nil {
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
