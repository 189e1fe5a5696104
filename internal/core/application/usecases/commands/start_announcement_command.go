package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrStartAnnouncementCommandIsNotConstructed = errors.New(
	"StartAnnouncementCommand must be created via NewStartAnnouncementCommand constructor",
)

// StartAnnouncementCommand represents a driver's request to mark their
// announced trip as underway.
type StartAnnouncementCommand struct { //nolint:recvcheck //using for validation
	announcementID kernel.UUID
	driverID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartAnnouncementCommand creates a command to activate an
// announcement. Validates both identifiers.
func NewStartAnnouncementCommand(announcementID kernel.UUID, driverID kernel.UUID) (StartAnnouncementCommand, error) {
	command := StartAnnouncementCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAnnouncementID(announcementID),
		command.setDriverID(driverID),
	); err != nil {
		return StartAnnouncementCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartAnnouncementCommand) Validate() error {
	return c.guard.Validate(ErrStartAnnouncementCommandIsNotConstructed)
}

// AnnouncementID returns the announcement to activate.
func (c StartAnnouncementCommand) AnnouncementID() kernel.UUID {
	return c.announcementID
}

// DriverID returns the acting driver's identifier.
func (c StartAnnouncementCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *StartAnnouncementCommand) setAnnouncementID(announcementID kernel.UUID) error {
	if err := announcementID.Validate(); err != nil {
		return err
	}

	c.announcementID = announcementID
	return nil
}

func (c *StartAnnouncementCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
