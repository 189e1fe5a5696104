package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDeleteAnnouncementCommandIsNotConstructed = errors.New(
	"DeleteAnnouncementCommand must be created via NewDeleteAnnouncementCommand constructor",
)

// DeleteAnnouncementCommand represents a driver's request to withdraw
// their offer entirely. Every demand still holding capacity on it is
// cancelled as part of the same operation.
type DeleteAnnouncementCommand struct { //nolint:recvcheck //using for validation
	announcementID kernel.UUID
	driverID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteAnnouncementCommand creates a command to delete an
// announcement. Validates both identifiers.
func NewDeleteAnnouncementCommand(announcementID kernel.UUID, driverID kernel.UUID) (DeleteAnnouncementCommand, error) {
	command := DeleteAnnouncementCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAnnouncementID(announcementID),
		command.setDriverID(driverID),
	); err != nil {
		return DeleteAnnouncementCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAnnouncementCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAnnouncementCommandIsNotConstructed)
}

// AnnouncementID returns the announcement to delete.
func (c DeleteAnnouncementCommand) AnnouncementID() kernel.UUID {
	return c.announcementID
}

// DriverID returns the acting driver's identifier.
func (c DeleteAnnouncementCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *DeleteAnnouncementCommand) setAnnouncementID(announcementID kernel.UUID) error {
	if err := announcementID.Validate(); err != nil {
		return err
	}

	c.announcementID = announcementID
	return nil
}

func (c *DeleteAnnouncementCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
