package ports

import (
	"context"

	"freight/internal/core/domain/model/demand"
	"freight/internal/core/domain/model/kernel"
)

// DemandRepository defines the persistence contract for demand
// aggregates.
type DemandRepository interface {
	// Add persists a new demand aggregate with its manifest.
	Add(ctx context.Context, aggregate *demand.Demand) error

	// Update persists changes to an existing demand, replacing its
	// manifest rows when they changed.
	Update(ctx context.Context, aggregate *demand.Demand) error

	// Get retrieves a demand by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*demand.Demand, error)

	// GetActiveByAnnouncement retrieves every demand of the announcement
	// that still holds capacity, meaning every demand in a non-terminal
	// status. Cancelled and delivered demands are excluded.
	GetActiveByAnnouncement(ctx context.Context, announcementID kernel.UUID) ([]*demand.Demand, error)
}
