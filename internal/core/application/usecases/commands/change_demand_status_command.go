package commands

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrChangeDemandStatusCommandIsNotConstructed = errors.New(
	"ChangeDemandStatusCommand must be created via NewChangeDemandStatusCommand constructor",
)

// DemandTransition names a forward step in a demand's lifecycle that the
// announcement's driver may trigger. Cancellation is a separate command
// because it belongs to the shipper and settles the ledger.
type DemandTransition int

const (
	TransitionUnknown DemandTransition = iota
	TransitionAccept
	TransitionStartTransit
	TransitionDeliver
)

// DemandTransitionFromString parses a lifecycle transition name as it
// appears on the wire: "accepted", "in-transit" or "delivered".
func DemandTransitionFromString(s string) (DemandTransition, error) {
	switch s {
	case "accepted":
		return TransitionAccept, nil
	case "in-transit":
		return TransitionStartTransit, nil
	case "delivered":
		return TransitionDeliver, nil
	default:
		return TransitionUnknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a driver transition", s))
	}
}

// Validate checks the transition is one of the named steps.
func (t DemandTransition) Validate() error {
	switch t {
	case TransitionAccept, TransitionStartTransit, TransitionDeliver:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("transition",
			fmt.Errorf("%d is not a known transition", int(t)))
	}
}

// ChangeDemandStatusCommand represents the driver's request to move a
// demand forward through its lifecycle: accept it, mark it in transit,
// or mark it delivered.
type ChangeDemandStatusCommand struct { //nolint:recvcheck //using for validation
	demandID   kernel.UUID
	driverID   kernel.UUID
	transition DemandTransition

	guard guard.ConstructorGuard
}

// NewChangeDemandStatusCommand creates a command to advance a demand's
// status. Validates the identifiers and the transition name.
func NewChangeDemandStatusCommand(
	demandID kernel.UUID,
	driverID kernel.UUID,
	transition DemandTransition,
) (ChangeDemandStatusCommand, error) {
	command := ChangeDemandStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDemandID(demandID),
		command.setDriverID(driverID),
		command.setTransition(transition),
	); err != nil {
		return ChangeDemandStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDemandStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDemandStatusCommandIsNotConstructed)
}

// DemandID returns the demand to advance.
func (c ChangeDemandStatusCommand) DemandID() kernel.UUID {
	return c.demandID
}

// DriverID returns the acting driver's identifier.
func (c ChangeDemandStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Transition returns the lifecycle step to apply.
func (c ChangeDemandStatusCommand) Transition() DemandTransition {
	return c.transition
}

func (c *ChangeDemandStatusCommand) setDemandID(demandID kernel.UUID) error {
	if err := demandID.Validate(); err != nil {
		return err
	}

	c.demandID = demandID
	return nil
}

func (c *ChangeDemandStatusCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *ChangeDemandStatusCommand) setTransition(transition DemandTransition) error {
	if err := transition.Validate(); err != nil {
		return err
	}

	c.transition = transition
	return nil
}
