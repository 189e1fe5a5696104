package commands

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/demand"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCreateDemandCommandIsNotConstructed = errors.New(
	"CreateDemandCommand must be created via NewCreateDemandCommand constructor",
)

// CreateDemandCommand represents a shipper's request to reserve part of
// an announcement's capacity for a manifest of packages.
//
// Example:
//
//	dims, _ := kernel.NewDimensions(40, 30, 20)
//	pkg, _ := demand.NewPackage("crate of parts", dims, 12, "standard")
//	cmd, err := NewCreateDemandCommand(demandID, shipperID, announcementID, []demand.Package{pkg})
//	if err != nil {
//	    return fmt.Errorf("invalid demand data: %w", err)
//	}
//
//	handler := NewCreateDemandCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, announcement.ErrInsufficientCapacity):
//	    // not enough room left, resubmit with a smaller manifest
//	case err != nil:
//	    return err
//	}
type CreateDemandCommand struct { //nolint:recvcheck //using for validation
	demandID       kernel.UUID
	shipperID      kernel.UUID
	announcementID kernel.UUID
	packages       []demand.Package

	guard guard.ConstructorGuard
}

// NewCreateDemandCommand creates a command to submit a capacity demand.
// Validates the identifiers and requires a non-empty manifest of
// constructed packages.
func NewCreateDemandCommand(
	demandID kernel.UUID,
	shipperID kernel.UUID,
	announcementID kernel.UUID,
	packages []demand.Package,
) (CreateDemandCommand, error) {
	command := CreateDemandCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDemandID(demandID),
		command.setShipperID(shipperID),
		command.setAnnouncementID(announcementID),
		command.setPackages(packages),
	); err != nil {
		return CreateDemandCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDemandCommand) Validate() error {
	return c.guard.Validate(ErrCreateDemandCommandIsNotConstructed)
}

// DemandID returns the identifier the new demand will carry.
func (c CreateDemandCommand) DemandID() kernel.UUID {
	return c.demandID
}

// ShipperID returns the submitting shipper's identifier.
func (c CreateDemandCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// AnnouncementID returns the announcement the demand reserves against.
func (c CreateDemandCommand) AnnouncementID() kernel.UUID {
	return c.announcementID
}

// Packages returns the manifest of packages to ship.
func (c CreateDemandCommand) Packages() []demand.Package {
	return c.packages
}

func (c *CreateDemandCommand) setDemandID(demandID kernel.UUID) error {
	if err := demandID.Validate(); err != nil {
		return err
	}

	c.demandID = demandID
	return nil
}

func (c *CreateDemandCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}

func (c *CreateDemandCommand) setAnnouncementID(announcementID kernel.UUID) error {
	if err := announcementID.Validate(); err != nil {
		return err
	}

	c.announcementID = announcementID
	return nil
}

func (c *CreateDemandCommand) setPackages(packages []demand.Package) error {
	if len(packages) == 0 {
		return errs.NewValueIsRequiredError("packages")
	}

	for i, p := range packages {
		if err := p.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("packages[%d]", i), err)
		}
	}

	c.packages = packages
	return nil
}
