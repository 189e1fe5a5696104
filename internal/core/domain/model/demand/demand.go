package demand

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrDemandIsNotConstructed is returned when a Demand was not created
	// through NewDemand or RestoreDemand.
	ErrDemandIsNotConstructed = errors.New(
		"Demand must be created via NewDemand or RestoreDemand constructor")

	// ErrManifestIsFrozen is returned when replacing the package list of a
	// demand that left Pending status; once the driver accepted, the
	// manifest no longer changes.
	ErrManifestIsFrozen = errors.New("packages can only be changed while the demand is pending")
)

// Demand is the aggregate root for a shipper's request to reserve part
// of an announcement's capacity for a manifest of packages.
//
// The volume a demand holds in the announcement's ledger is always
// Volume(): the sum of each package's length×width×height. Manifest
// changes therefore go through ReplacePackages so the caller can settle
// the volume delta with the ledger in the same transaction.
type Demand struct {
	id             kernel.UUID
	shipperID      kernel.UUID
	announcementID kernel.UUID
	packages       []Package
	status         Status
	createdAt      time.Time
	deliveredAt    *time.Time

	guard guard.ConstructorGuard
}

// NewDemand creates a new Demand in Pending status. The manifest must
// contain at least one package; each package is individually validated
// by its own constructor before it gets here.
func NewDemand(
	id kernel.UUID,
	shipperID kernel.UUID,
	announcementID kernel.UUID,
	packages []Package,
) (*Demand, error) {
	d := &Demand{
		status:    StatusPending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setShipperID(shipperID),
		d.setAnnouncementID(announcementID),
		d.setPackages(packages),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDemand reconstructs a Demand from persistence with its status,
// timestamps and manifest.
func RestoreDemand(
	id kernel.UUID,
	shipperID kernel.UUID,
	announcementID kernel.UUID,
	packages []Package,
	status Status,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Demand, error) {
	d := &Demand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setShipperID(shipperID),
		d.setAnnouncementID(announcementID),
		d.setPackages(packages),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	d.createdAt = createdAt
	d.deliveredAt = deliveredAt
	return d, nil
}

// Validate ensures the Demand was created through a constructor.
func (d *Demand) Validate() error {
	if d == nil {
		return ErrDemandIsNotConstructed
	}
	return d.guard.Validate(ErrDemandIsNotConstructed)
}

// IsEqual compares two demands by identity.
func (d *Demand) IsEqual(other *Demand) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the demand's unique identifier.
func (d *Demand) ID() kernel.UUID {
	return d.id
}

// ShipperID returns the owning shipper's identifier.
func (d *Demand) ShipperID() kernel.UUID {
	return d.shipperID
}

// IsOwnedBy reports whether the given shipper owns this demand.
func (d *Demand) IsOwnedBy(shipperID kernel.UUID) bool {
	return d.shipperID.IsEqual(shipperID)
}

// AnnouncementID returns the announcement this demand reserves against.
func (d *Demand) AnnouncementID() kernel.UUID {
	return d.announcementID
}

// Packages returns a copy of the manifest.
func (d *Demand) Packages() []Package {
	out := make([]Package, len(d.packages))
	copy(out, d.packages)
	return out
}

// Volume returns the total capacity this demand consumes: the sum of
// length×width×height over all packages.
func (d *Demand) Volume() float64 {
	var total float64
	for _, p := range d.packages {
		total += p.Volume()
	}
	return total
}

// Status returns the current lifecycle status.
func (d *Demand) Status() Status {
	return d.status
}

// CreatedAt returns the submission timestamp.
func (d *Demand) CreatedAt() time.Time {
	return d.createdAt
}

// DeliveredAt returns the delivery timestamp, nil until delivered.
func (d *Demand) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// Accept records the driver's acceptance (Pending -> Accepted).
func (d *Demand) Accept() error {
	newStatus, err := d.status.Accept()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// StartTransit marks the shipment underway (Accepted -> InTransit).
func (d *Demand) StartTransit() error {
	newStatus, err := d.status.StartTransit()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Deliver marks the shipment delivered (InTransit -> Delivered) and
// stamps deliveredAt.
func (d *Demand) Deliver(now time.Time) error {
	newStatus, err := d.status.Deliver()
	if err != nil {
		return err
	}

	d.status = newStatus
	delivered := now.UTC()
	d.deliveredAt = &delivered
	return nil
}

// Cancel withdraws the demand from any non-terminal state.
//
// A nil return guarantees a genuine transition happened, which is the
// caller's license to release exactly this demand's volume back to the
// announcement's ledger — once. ErrAlreadyCancelled and
// ErrAlreadyDelivered mean no capacity may be released for this call.
func (d *Demand) Cancel() error {
	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// ReplacePackages swaps the manifest for a new one. Only allowed while
// the demand is Pending; the caller is responsible for settling the
// volume delta with the announcement's ledger in the same transaction.
func (d *Demand) ReplacePackages(packages []Package) error {
	if d.status != StatusPending {
		return ErrManifestIsFrozen
	}
	return d.setPackages(packages)
}

func (d *Demand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Demand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}
	d.shipperID = shipperID
	return nil
}

func (d *Demand) setAnnouncementID(announcementID kernel.UUID) error {
	if err := announcementID.Validate(); err != nil {
		return err
	}
	d.announcementID = announcementID
	return nil
}

func (d *Demand) setPackages(packages []Package) error {
	if len(packages) == 0 {
		return errs.NewValueIsRequiredError("packages")
	}

	for i, p := range packages {
		if err := p.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("packages[%d]", i), err)
		}
	}

	d.packages = make([]Package, len(packages))
	copy(d.packages, packages)
	return nil
}

func (d *Demand) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
