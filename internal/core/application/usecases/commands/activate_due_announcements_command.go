package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

// ActivateDueAnnouncementsCommand triggers activation of every pending
// announcement whose start date has arrived. Run periodically by the
// background scheduler.
//
// Example:
//
//	cmd := NewActivateDueAnnouncementsCommand()
//	handler := NewActivateDueAnnouncementsCommandHandler(uowFactory)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Activation sweep failed: %v", err)
//	}
type ActivateDueAnnouncementsCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrActivateDueAnnouncementsCommandIsNotConstructed = errors.New(
		"ActivateDueAnnouncementsCommand must be created via NewActivateDueAnnouncementsCommand constructor",
	)
)

// NewActivateDueAnnouncementsCommand creates a command to sweep pending
// announcements into active status. This is a parameterless command that
// processes every due offer.
func NewActivateDueAnnouncementsCommand() ActivateDueAnnouncementsCommand {
	command := ActivateDueAnnouncementsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrActivateDueAnnouncementsCommandIsNotConstructed if validation fails.
func (c *ActivateDueAnnouncementsCommand) Validate() error {
	return c.guard.Validate(ErrActivateDueAnnouncementsCommandIsNotConstructed)
}
