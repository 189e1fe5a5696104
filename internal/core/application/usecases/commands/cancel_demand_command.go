package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCancelDemandCommandIsNotConstructed = errors.New(
	"CancelDemandCommand must be created via NewCancelDemandCommand constructor",
)

// CancelDemandCommand represents a shipper's request to withdraw a
// demand and return its volume to the announcement's capacity pool.
type CancelDemandCommand struct { //nolint:recvcheck //using for validation
	demandID  kernel.UUID
	shipperID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelDemandCommand creates a command to cancel a demand.
// Validates both identifiers.
func NewCancelDemandCommand(demandID kernel.UUID, shipperID kernel.UUID) (CancelDemandCommand, error) {
	command := CancelDemandCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDemandID(demandID),
		command.setShipperID(shipperID),
	); err != nil {
		return CancelDemandCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDemandCommand) Validate() error {
	return c.guard.Validate(ErrCancelDemandCommandIsNotConstructed)
}

// DemandID returns the demand to cancel.
func (c CancelDemandCommand) DemandID() kernel.UUID {
	return c.demandID
}

// ShipperID returns the acting shipper's identifier.
func (c CancelDemandCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

func (c *CancelDemandCommand) setDemandID(demandID kernel.UUID) error {
	if err := demandID.Validate(); err != nil {
		return err
	}

	c.demandID = demandID
	return nil
}

func (c *CancelDemandCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}
