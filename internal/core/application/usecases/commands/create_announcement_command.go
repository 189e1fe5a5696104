package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCreateAnnouncementCommandIsNotConstructed = errors.New(
	"CreateAnnouncementCommand must be created via NewCreateAnnouncementCommand constructor",
)

// CreateAnnouncementCommand represents a driver's request to publish a
// transport offer. Encapsulates the route, the admissible package
// dimensions and the declared capacity that seeds the ledger.
//
// Example:
//
//	announcementID := kernel.NewUUID()
//	route, _ := kernel.NewRoute("Lyon", []string{"Dijon"}, "Paris")
//	maxDims, _ := kernel.NewDimensions(120, 80, 60)
//	cmd, err := NewCreateAnnouncementCommand(
//	    announcementID, driverID, route, maxDims,
//	    []string{"standard", "fragile"}, 5000, startDate, nil,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid announcement data: %w", err)
//	}
//
//	handler := NewCreateAnnouncementCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create announcement: %w", err)
//	}
type CreateAnnouncementCommand struct { //nolint:recvcheck //using for validation
	announcementID kernel.UUID
	driverID       kernel.UUID
	route          kernel.Route
	maxDimensions  kernel.Dimensions
	packageTypes   []string
	capacity       float64
	startDate      time.Time
	endDate        *time.Time

	guard guard.ConstructorGuard
}

// NewCreateAnnouncementCommand creates a command to publish a transport
// offer. Validates the identifiers and the route and dimension value
// objects; the business rules on capacity and dates are enforced by the
// aggregate constructor inside the handler.
func NewCreateAnnouncementCommand(
	announcementID kernel.UUID,
	driverID kernel.UUID,
	route kernel.Route,
	maxDimensions kernel.Dimensions,
	packageTypes []string,
	capacity float64,
	startDate time.Time,
	endDate *time.Time,
) (CreateAnnouncementCommand, error) {
	command := CreateAnnouncementCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAnnouncementID(announcementID),
		command.setDriverID(driverID),
		command.setRoute(route),
		command.setMaxDimensions(maxDimensions),
	); err != nil {
		return CreateAnnouncementCommand{}, err
	}

	command.packageTypes = packageTypes
	command.capacity = capacity
	command.startDate = startDate
	command.endDate = endDate

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAnnouncementCommand) Validate() error {
	return c.guard.Validate(ErrCreateAnnouncementCommandIsNotConstructed)
}

// AnnouncementID returns the identifier the new announcement will carry.
func (c CreateAnnouncementCommand) AnnouncementID() kernel.UUID {
	return c.announcementID
}

// DriverID returns the publishing driver's identifier.
func (c CreateAnnouncementCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Route returns the journey the offer covers.
func (c CreateAnnouncementCommand) Route() kernel.Route {
	return c.route
}

// MaxDimensions returns the maximum admissible package dimensions.
func (c CreateAnnouncementCommand) MaxDimensions() kernel.Dimensions {
	return c.maxDimensions
}

// PackageTypes returns the accepted package type tags as submitted.
func (c CreateAnnouncementCommand) PackageTypes() []string {
	return c.packageTypes
}

// Capacity returns the declared capacity in cubic units.
func (c CreateAnnouncementCommand) Capacity() float64 {
	return c.capacity
}

// StartDate returns the planned departure date.
func (c CreateAnnouncementCommand) StartDate() time.Time {
	return c.startDate
}

// EndDate returns the optional trip end date.
func (c CreateAnnouncementCommand) EndDate() *time.Time {
	return c.endDate
}

func (c *CreateAnnouncementCommand) setAnnouncementID(announcementID kernel.UUID) error {
	if err := announcementID.Validate(); err != nil {
		return err
	}

	c.announcementID = announcementID
	return nil
}

func (c *CreateAnnouncementCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateAnnouncementCommand) setRoute(route kernel.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}

	c.route = route
	return nil
}

func (c *CreateAnnouncementCommand) setMaxDimensions(maxDimensions kernel.Dimensions) error {
	if err := maxDimensions.Validate(); err != nil {
		return err
	}

	c.maxDimensions = maxDimensions
	return nil
}
