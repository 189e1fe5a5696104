// Package ports defines repository and unit-of-work interfaces for the
// freight domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/announcement"
	"freight/internal/core/domain/model/kernel"
)

// ErrVersionConflict is returned by AnnouncementRepository.Update when
// the aggregate's version no longer matches the stored row: another
// transaction committed a ledger change in between. The caller must
// re-read the aggregate and re-validate its decision before retrying —
// never retry the write blindly.
var ErrVersionConflict = errors.New("announcement was modified concurrently")

// AnnouncementRepository defines the persistence contract for
// announcement aggregates, including the atomic conditional write the
// capacity ledger depends on.
type AnnouncementRepository interface {
	// Add persists a new announcement aggregate.
	Add(ctx context.Context, aggregate *announcement.Announcement) error

	// Update persists changes to an existing announcement as a single
	// conditional write: the row is updated only where its stored version
	// equals the aggregate's version, and the version is incremented in
	// the same statement. Returns ErrVersionConflict when the compare
	// fails and the row still exists, or an ObjectNotFoundError when it
	// does not.
	Update(ctx context.Context, aggregate *announcement.Announcement) error

	// Get retrieves an announcement by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*announcement.Announcement, error)

	// GetAllPendingDue retrieves pending announcements whose start date
	// has arrived, for background activation.
	GetAllPendingDue(ctx context.Context, now time.Time) ([]*announcement.Announcement, error)

	// Delete removes the announcement record. Dependent demands must have
	// been cancelled first; deletion of a missing record reports an
	// ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error
}
