package announcementrepo

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/announcement"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL error code for a unique
// constraint violation.
const pgUniqueViolation = "23505"

// ErrAlreadyExists is returned when adding an announcement whose
// identifier is already persisted.
var ErrAlreadyExists = errors.New("announcement with this id already exists")

// GormAnnouncementRepository implements AnnouncementRepository using GORM.
type GormAnnouncementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAnnouncementRepository creates a new GORM announcement repository.
func NewGormAnnouncementRepository(db *gorm.DB, tracker aggregateTracker) *GormAnnouncementRepository {
	return &GormAnnouncementRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new announcement to the database.
func (r *GormAnnouncementRepository) Add(ctx context.Context, aggregate *announcement.Announcement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrAlreadyExists
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the announcement with a compare-and-swap on its
// version: the row is written only where the stored version still
// matches the one the aggregate was read at, and the version is
// incremented in the same statement. A failed compare on an existing
// row returns ports.ErrVersionConflict so the caller can re-read and
// re-decide; a missing row returns an ObjectNotFoundError.
func (r *GormAnnouncementRepository) Update(ctx context.Context, aggregate *announcement.Announcement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	readVersion := aggregate.Version()
	dto := fromDomain(aggregate)
	dto.Version = readVersion + 1

	result := r.db.WithContext(ctx).
		Model(&AnnouncementDTO{}).
		Where("id = ? AND version = ?", dto.ID, readVersion).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&AnnouncementDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("announcement", aggregate.ID().String())
		}
		return ports.ErrVersionConflict
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an announcement by ID.
func (r *GormAnnouncementRepository) Get(ctx context.Context, id kernel.UUID) (*announcement.Announcement, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AnnouncementDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("announcement", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingDue retrieves pending announcements whose start date has
// arrived.
func (r *GormAnnouncementRepository) GetAllPendingDue(
	ctx context.Context, now time.Time,
) ([]*announcement.Announcement, error) {
	var dtos []AnnouncementDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND start_date <= ?", int(announcement.StatusPending), now).Error; err != nil {
		return nil, err
	}

	announcements := make([]*announcement.Announcement, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}

	return announcements, nil
}

// Delete removes the announcement row. Deleting an already-removed
// announcement reports an ObjectNotFoundError.
func (r *GormAnnouncementRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AnnouncementDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("announcement", id.String())
	}

	return nil
}
