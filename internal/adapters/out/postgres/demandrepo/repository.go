package demandrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/demand"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL error code for a unique
// constraint violation.
const pgUniqueViolation = "23505"

// ErrAlreadyExists is returned when adding a demand whose identifier is
// already persisted.
var ErrAlreadyExists = errors.New("demand with this id already exists")

// GormDemandRepository implements DemandRepository using GORM.
type GormDemandRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDemandRepository creates a new GORM demand repository.
func NewGormDemandRepository(db *gorm.DB, tracker aggregateTracker) *GormDemandRepository {
	return &GormDemandRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new demand and its manifest to the database.
func (r *GormDemandRepository) Add(ctx context.Context, aggregate *demand.Demand) error {
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

// Update persists the demand. Manifest items are value objects without
// identity, so the package rows are replaced wholesale rather than
// diffed against the stored set.
func (r *GormDemandRepository) Update(ctx context.Context, aggregate *demand.Demand) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&DemandDTO{}).
		Where("id = ?", dto.ID).
		Omit("Packages").
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("demand", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).
		Delete(&DemandPackageDTO{}, "demand_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(dto.Packages) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Packages).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a demand by ID with its manifest.
func (r *GormDemandRepository) Get(ctx context.Context, id kernel.UUID) (*demand.Demand, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DemandDTO
	if err := r.db.WithContext(ctx).
		Preload("Packages").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("demand", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByAnnouncement retrieves the demands still holding capacity
// on the given announcement: every demand not yet delivered or
// cancelled.
func (r *GormDemandRepository) GetActiveByAnnouncement(
	ctx context.Context, announcementID kernel.UUID,
) ([]*demand.Demand, error) {
	if err := announcementID.Validate(); err != nil {
		return nil, err
	}

	activeStatuses := []int{
		int(demand.StatusPending),
		int(demand.StatusAccepted),
		int(demand.StatusInTransit),
	}

	var dtos []DemandDTO
	if err := r.db.WithContext(ctx).
		Preload("Packages").
		Find(&dtos, "announcement_id = ? AND status IN ?", announcementID.Bytes(), activeStatuses).Error; err != nil {
		return nil, err
	}

	demands := make([]*demand.Demand, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		demands = append(demands, d)
	}

	return demands, nil
}
