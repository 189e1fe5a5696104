package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCompleteAnnouncementCommandIsNotConstructed = errors.New(
	"CompleteAnnouncementCommand must be created via NewCompleteAnnouncementCommand constructor",
)

// CompleteAnnouncementCommand represents a driver's request to mark
// their trip as finished. A completed announcement no longer accepts
// demands.
type CompleteAnnouncementCommand struct { //nolint:recvcheck //using for validation
	announcementID kernel.UUID
	driverID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteAnnouncementCommand creates a command to complete an
// announcement. Validates both identifiers.
func NewCompleteAnnouncementCommand(announcementID kernel.UUID, driverID kernel.UUID) (CompleteAnnouncementCommand, error) {
	command := CompleteAnnouncementCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAnnouncementID(announcementID),
		command.setDriverID(driverID),
	); err != nil {
		return CompleteAnnouncementCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteAnnouncementCommand) Validate() error {
	return c.guard.Validate(ErrCompleteAnnouncementCommandIsNotConstructed)
}

// AnnouncementID returns the announcement to complete.
func (c CompleteAnnouncementCommand) AnnouncementID() kernel.UUID {
	return c.announcementID
}

// DriverID returns the acting driver's identifier.
func (c CompleteAnnouncementCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *CompleteAnnouncementCommand) setAnnouncementID(announcementID kernel.UUID) error {
	if err := announcementID.Validate(); err != nil {
		return err
	}

	c.announcementID = announcementID
	return nil
}

func (c *CompleteAnnouncementCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
