package commands

import (
	"context"
	"errors"

	"freight/internal/core/ports"
)

// UpdateDemandPackagesCommandHandler handles manifest replacement on a
// pending demand. The ledger is settled with the volume delta: a grown
// manifest debits the difference, a shrunk one credits it back. Growth
// beyond the remaining capacity is rejected and leaves the original
// reservation intact.
//
// Example:
//
//	handler := NewUpdateDemandPackagesCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, demand.ErrManifestIsFrozen):
//	    log.Println("demand already accepted, manifest can no longer change")
//	case errors.Is(err, announcement.ErrInsufficientCapacity):
//	    log.Println("grown manifest does not fit, reservation unchanged")
//	case err != nil:
//	    log.Printf("manifest update failed: %v", err)
//	}
type UpdateDemandPackagesCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateDemandPackagesCommandHandler creates a handler for manifest
// replacement operations. Requires a UoWFactory because the demand and
// the announcement ledger change together.
func NewUpdateDemandPackagesCommandHandler(uowFactory UoWFactory) UpdateDemandPackagesCommandHandler {
	return UpdateDemandPackagesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manifest replacement command.
//
// Verifies ownership, replaces the manifest (which the aggregate allows
// only while pending), settles the volume delta with the ledger and
// persists both aggregates in one transaction. Lost version races are
// retried against fresh state up to maxLedgerRetries times.
func (h *UpdateDemandPackagesCommandHandler) Handle(ctx context.Context, cmd UpdateDemandPackagesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var err error
	for range maxLedgerRetries {
		err = h.replaceAndSettle(ctx, cmd)
		if !errors.Is(err, ports.ErrVersionConflict) {
			return err
		}
	}

	return err
}

func (h *UpdateDemandPackagesCommandHandler) replaceAndSettle(ctx context.Context, cmd UpdateDemandPackagesCommand) error {
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

	offer, err := announcementRepo.Get(ctx, existing.AnnouncementID())
	if err != nil {
		return err
	}

	for _, p := range cmd.Packages() {
		if !offer.FitsPackage(p.Dimensions()) {
			return ErrPackageDoesNotFit
		}
	}

	oldVolume := existing.Volume()
	if err = existing.ReplacePackages(cmd.Packages()); err != nil {
		return err
	}
	newVolume := existing.Volume()

	switch {
	case newVolume > oldVolume:
		if err = offer.Reserve(newVolume - oldVolume); err != nil {
			return err
		}
	case newVolume < oldVolume:
		if err = offer.Release(oldVolume - newVolume); err != nil {
			return err
		}
	}

	if err = demandRepo.Update(ctx, existing); err != nil {
		return err
	}

	if newVolume != oldVolume {
		if err = announcementRepo.Update(ctx, offer); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
