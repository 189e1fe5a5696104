package announcement

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrAnnouncementIsNotConstructed is returned when an Announcement was
	// not created through NewAnnouncement or RestoreAnnouncement.
	ErrAnnouncementIsNotConstructed = errors.New(
		"Announcement must be created via NewAnnouncement or RestoreAnnouncement constructor")

	// ErrInsufficientCapacity is the terminal business rejection for a
	// reservation that does not fit in the remaining capacity. It is never
	// retried by the core; the shipper must resubmit with a smaller volume.
	ErrInsufficientCapacity = errors.New("insufficient capacity for requested volume")

	// ErrAnnouncementClosed indicates the announcement no longer accepts
	// reservations because its status is terminal.
	ErrAnnouncementClosed = errors.New("announcement is no longer accepting demands")

	// ErrReleaseExceedsReserved indicates an attempt to release more
	// capacity than is currently reserved, which would break the
	// conservation invariant from below.
	ErrReleaseExceedsReserved = errors.New("release exceeds reserved capacity")
)

// Announcement is the aggregate root for a driver's transport offer.
//
// It carries the capacity ledger for the offer: declaredCapacity is fixed
// at publication, reservedCapacity is maintained incrementally by Reserve
// and Release, and the invariant reservedCapacity ≤ declaredCapacity holds
// at all times. availableCapacity is always derived, never stored.
//
// The version field supports optimistic concurrency: the repository
// persists the aggregate with a compare-and-swap on version, so a ledger
// decision taken against a stale read can never be committed.
type Announcement struct {
	id               kernel.UUID
	driverID         kernel.UUID
	route            kernel.Route
	maxDimensions    kernel.Dimensions
	packageTypes     []string
	declaredCapacity float64
	reservedCapacity float64
	startDate        time.Time
	endDate          *time.Time
	status           Status
	createdAt        time.Time
	version          int

	guard guard.ConstructorGuard
}

// NewAnnouncement creates a new Announcement in Pending status with an
// empty ledger.
//
// Validation rules:
//   - id and driverID must be valid UUIDs
//   - route and maxDimensions must be constructed value objects
//   - declaredCapacity must be greater than 0
//   - startDate must be today or later (midnight-truncated comparison)
//   - endDate, when given, must be after startDate
//
// Package type tags are lowercased, trimmed and deduplicated.
func NewAnnouncement(
	id kernel.UUID,
	driverID kernel.UUID,
	route kernel.Route,
	maxDimensions kernel.Dimensions,
	packageTypes []string,
	declaredCapacity float64,
	startDate time.Time,
	endDate *time.Time,
) (*Announcement, error) {
	a := &Announcement{
		status:    StatusPending,
		createdAt: time.Now().UTC(),
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setDriverID(driverID),
		a.setRoute(route),
		a.setMaxDimensions(maxDimensions),
		a.setDeclaredCapacity(declaredCapacity),
		a.setStartDate(startDate),
	); err != nil {
		return nil, err
	}

	if err := a.setEndDate(endDate); err != nil {
		return nil, err
	}

	a.setPackageTypes(packageTypes)
	return a, nil
}

// RestoreAnnouncement reconstructs an Announcement from persistence,
// including its ledger state, lifecycle status and version counter.
// Unlike NewAnnouncement it does not re-check the startDate against
// today: an announcement may legitimately outlive its publication rules.
func RestoreAnnouncement(
	id kernel.UUID,
	driverID kernel.UUID,
	route kernel.Route,
	maxDimensions kernel.Dimensions,
	packageTypes []string,
	declaredCapacity float64,
	reservedCapacity float64,
	startDate time.Time,
	endDate *time.Time,
	status Status,
	createdAt time.Time,
	version int,
) (*Announcement, error) {
	a := &Announcement{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setDriverID(driverID),
		a.setRoute(route),
		a.setMaxDimensions(maxDimensions),
		a.setDeclaredCapacity(declaredCapacity),
		a.setReservedCapacity(reservedCapacity),
		a.setStatus(status),
		a.setVersion(version),
	); err != nil {
		return nil, err
	}

	a.startDate = startDate
	if err := a.setEndDate(endDate); err != nil {
		return nil, err
	}

	a.setPackageTypes(packageTypes)
	a.createdAt = createdAt
	return a, nil
}

// Validate ensures the Announcement was created through a constructor.
func (a *Announcement) Validate() error {
	if a == nil {
		return ErrAnnouncementIsNotConstructed
	}
	return a.guard.Validate(ErrAnnouncementIsNotConstructed)
}

// IsEqual compares two announcements by identity.
func (a *Announcement) IsEqual(other *Announcement) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the announcement's unique identifier.
func (a *Announcement) ID() kernel.UUID {
	return a.id
}

// DriverID returns the owning driver's identifier.
func (a *Announcement) DriverID() kernel.UUID {
	return a.driverID
}

// IsOwnedBy reports whether the given driver owns this announcement.
func (a *Announcement) IsOwnedBy(driverID kernel.UUID) bool {
	return a.driverID.IsEqual(driverID)
}

// Route returns the journey this offer covers.
func (a *Announcement) Route() kernel.Route {
	return a.route
}

// MaxDimensions returns the maximum admissible package dimensions.
// Zero sides mean no limit was declared for that side.
func (a *Announcement) MaxDimensions() kernel.Dimensions {
	return a.maxDimensions
}

// PackageTypes returns a copy of the accepted package type tags.
func (a *Announcement) PackageTypes() []string {
	out := make([]string, len(a.packageTypes))
	copy(out, a.packageTypes)
	return out
}

// DeclaredCapacity returns the capacity as originally published.
func (a *Announcement) DeclaredCapacity() float64 {
	return a.declaredCapacity
}

// ReservedCapacity returns the capacity currently held by non-terminal
// demands.
func (a *Announcement) ReservedCapacity() float64 {
	return a.reservedCapacity
}

// AvailableCapacity returns declared minus reserved capacity. The
// conservation invariant guarantees the result is never negative.
func (a *Announcement) AvailableCapacity() float64 {
	return a.declaredCapacity - a.reservedCapacity
}

// StartDate returns the planned departure date.
func (a *Announcement) StartDate() time.Time {
	return a.startDate
}

// EndDate returns the trip end date, nil until one is set.
func (a *Announcement) EndDate() *time.Time {
	return a.endDate
}

// Status returns the current lifecycle status.
func (a *Announcement) Status() Status {
	return a.status
}

// CreatedAt returns the publication timestamp.
func (a *Announcement) CreatedAt() time.Time {
	return a.createdAt
}

// Version returns the optimistic-concurrency counter persisted with the
// aggregate. The repository increments it on every successful update.
func (a *Announcement) Version() int {
	return a.version
}

// Reserve debits volume from the available capacity.
//
// The check and the debit happen on the in-memory aggregate; the caller
// commits the result with a version-guarded update, so two racing
// reservations against the same remaining capacity can never both
// succeed — the loser's write fails the version compare and must re-read.
//
// Returns ErrAnnouncementClosed when the offer is terminal and
// ErrInsufficientCapacity when the volume does not fit. Both are terminal
// business rejections, not transient faults.
func (a *Announcement) Reserve(volume float64) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume",
			fmt.Errorf("%g is not greater than 0", volume))
	}

	if a.status.IsTerminal() {
		return ErrAnnouncementClosed
	}

	if a.reservedCapacity+volume > a.declaredCapacity {
		return ErrInsufficientCapacity
	}

	a.reservedCapacity += volume
	return nil
}

// Release credits volume back to the available capacity.
//
// Idempotence against double release is enforced by the demand state
// machine: callers invoke Release only on a genuine transition to
// cancelled, never on an already-cancelled demand. Releasing more than
// is reserved breaks the invariant from below and is rejected.
func (a *Announcement) Release(volume float64) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume",
			fmt.Errorf("%g is not greater than 0", volume))
	}

	if volume > a.reservedCapacity {
		return ErrReleaseExceedsReserved
	}

	a.reservedCapacity -= volume
	return nil
}

// FitsPackage reports whether the given package dimensions respect the
// announcement's declared maximum on every side.
func (a *Announcement) FitsPackage(dimensions kernel.Dimensions) bool {
	return dimensions.Fits(a.maxDimensions)
}

// Start marks the trip underway (Pending -> Active). No capacity effect.
func (a *Announcement) Start() error {
	newStatus, err := a.status.Start()
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

// Complete finishes the trip (Active -> Completed) and stamps the end
// date when none was set. Subsequent reservations are rejected.
func (a *Announcement) Complete(now time.Time) error {
	newStatus, err := a.status.Complete()
	if err != nil {
		return err
	}

	a.status = newStatus
	if a.endDate == nil {
		end := now.UTC()
		a.endDate = &end
	}
	return nil
}

// Cancel withdraws the offer from any non-terminal state. Dependent
// demands are cancelled by the application layer before the record is
// removed; the aggregate itself only transitions its status.
func (a *Announcement) Cancel() error {
	newStatus, err := a.status.Cancel()
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

func (a *Announcement) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Announcement) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	a.driverID = driverID
	return nil
}

func (a *Announcement) setRoute(route kernel.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	a.route = route
	return nil
}

func (a *Announcement) setMaxDimensions(maxDimensions kernel.Dimensions) error {
	if err := maxDimensions.Validate(); err != nil {
		return err
	}
	a.maxDimensions = maxDimensions
	return nil
}

func (a *Announcement) setPackageTypes(packageTypes []string) {
	seen := make(map[string]struct{}, len(packageTypes))
	cleaned := make([]string, 0, len(packageTypes))
	for _, tag := range packageTypes {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		cleaned = append(cleaned, tag)
	}
	a.packageTypes = cleaned
}

func (a *Announcement) setDeclaredCapacity(declaredCapacity float64) error {
	if math.IsNaN(declaredCapacity) || math.IsInf(declaredCapacity, 0) {
		return errs.NewValueIsInvalidErrorWithCause("declaredCapacity",
			fmt.Errorf("%g is not a finite number", declaredCapacity))
	}
	if declaredCapacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("declaredCapacity",
			fmt.Errorf("%g is not greater than 0", declaredCapacity))
	}
	a.declaredCapacity = declaredCapacity
	return nil
}

func (a *Announcement) setReservedCapacity(reservedCapacity float64) error {
	if reservedCapacity < 0 || reservedCapacity > a.declaredCapacity {
		return errs.NewValueIsOutOfRangeError(
			"reservedCapacity", reservedCapacity, 0, a.declaredCapacity)
	}
	a.reservedCapacity = reservedCapacity
	return nil
}

func (a *Announcement) setStartDate(startDate time.Time) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if startDate.UTC().Truncate(24 * time.Hour).Before(today) {
		return errs.NewValueIsInvalidErrorWithCause("startDate",
			fmt.Errorf("%s is in the past", startDate.Format(time.DateOnly)))
	}
	a.startDate = startDate
	return nil
}

func (a *Announcement) setEndDate(endDate *time.Time) error {
	if endDate != nil && !endDate.After(a.startDate) {
		return errs.NewValueIsInvalidErrorWithCause("endDate",
			fmt.Errorf("%s is not after start date", endDate.Format(time.DateOnly)))
	}
	a.endDate = endDate
	return nil
}

func (a *Announcement) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}

func (a *Announcement) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause("announcement version",
			fmt.Errorf("%d is not greater than 0", version))
	}
	a.version = version
	return nil
}
