package commands

import (
	"context"

	"freight/internal/core/domain/model/announcement"
)

// CreateAnnouncementCommandHandler handles the business logic for
// publishing transport offers. New announcements start in "pending"
// status with an empty ledger.
//
// Example:
//
//	handler := NewCreateAnnouncementCommandHandler(uowFactory)
//	cmd, _ := NewCreateAnnouncementCommand(...)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("announcement creation failed: %w", err)
//	}
//	// Offer is now published and awaiting its start date
type CreateAnnouncementCommandHandler struct {
	uowFactory AnnouncementUoWFactory
}

// NewCreateAnnouncementCommandHandler creates a handler for announcement
// creation operations. Requires an AnnouncementUoWFactory for
// transactional persistence.
func NewCreateAnnouncementCommandHandler(uowFactory AnnouncementUoWFactory) CreateAnnouncementCommandHandler {
	return CreateAnnouncementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the announcement creation command.
// Builds the aggregate, which enforces the capacity and date rules, and
// persists it in "pending" status within a transaction.
func (h *CreateAnnouncementCommandHandler) Handle(ctx context.Context, cmd CreateAnnouncementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := announcement.NewAnnouncement(
		cmd.AnnouncementID(),
		cmd.DriverID(),
		cmd.Route(),
		cmd.MaxDimensions(),
		cmd.PackageTypes(),
		cmd.Capacity(),
		cmd.StartDate(),
		cmd.EndDate(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AnnouncementRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
