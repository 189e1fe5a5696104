package commands

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/demand"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrUpdateDemandPackagesCommandIsNotConstructed = errors.New(
	"UpdateDemandPackagesCommand must be created via NewUpdateDemandPackagesCommand constructor",
)

// UpdateDemandPackagesCommand represents a shipper's request to replace
// the manifest of a pending demand. The volume difference between the
// old and new manifest is settled with the announcement's ledger.
type UpdateDemandPackagesCommand struct { //nolint:recvcheck //using for validation
	demandID  kernel.UUID
	shipperID kernel.UUID
	packages  []demand.Package

	guard guard.ConstructorGuard
}

// NewUpdateDemandPackagesCommand creates a command to replace a demand's
// manifest. Validates the identifiers and requires a non-empty manifest
// of constructed packages.
func NewUpdateDemandPackagesCommand(
	demandID kernel.UUID,
	shipperID kernel.UUID,
	packages []demand.Package,
) (UpdateDemandPackagesCommand, error) {
	command := UpdateDemandPackagesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDemandID(demandID),
		command.setShipperID(shipperID),
		command.setPackages(packages),
	); err != nil {
		return UpdateDemandPackagesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDemandPackagesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDemandPackagesCommandIsNotConstructed)
}

// DemandID returns the demand whose manifest is being replaced.
func (c UpdateDemandPackagesCommand) DemandID() kernel.UUID {
	return c.demandID
}

// ShipperID returns the acting shipper's identifier.
func (c UpdateDemandPackagesCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// Packages returns the replacement manifest.
func (c UpdateDemandPackagesCommand) Packages() []demand.Package {
	return c.packages
}

func (c *UpdateDemandPackagesCommand) setDemandID(demandID kernel.UUID) error {
	if err := demandID.Validate(); err != nil {
		return err
	}

	c.demandID = demandID
	return nil
}

func (c *UpdateDemandPackagesCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}

func (c *UpdateDemandPackagesCommand) setPackages(packages []demand.Package) error {
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
