package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDemandsByAnnouncementQueryHandler reads every demand against one
// announcement with its manifest, oldest first.
type GetDemandsByAnnouncementQueryHandler struct {
	db *gorm.DB
}

// NewGetDemandsByAnnouncementQueryHandler creates a handler for
// announcement-scoped demand listing.
func NewGetDemandsByAnnouncementQueryHandler(db *gorm.DB) GetDemandsByAnnouncementQueryHandler {
	return GetDemandsByAnnouncementQueryHandler{db: db}
}

// Handle executes the query for the announcement named in it.
func (h GetDemandsByAnnouncementQueryHandler) Handle(
	ctx context.Context,
	query GetDemandsByAnnouncementQuery,
) ([]DemandResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		demandRowsQuery+`
		WHERE d.announcement_id = ?
		ORDER BY d.created_at, d.id, p.id
	`, query.AnnouncementID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return foldDemandRows(rows)
}
