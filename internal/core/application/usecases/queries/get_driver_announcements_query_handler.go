package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDriverAnnouncementsQueryHandler reads the offers published by one
// driver, newest first.
type GetDriverAnnouncementsQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverAnnouncementsQueryHandler creates a handler for
// driver-scoped announcement listing.
func NewGetDriverAnnouncementsQueryHandler(db *gorm.DB) GetDriverAnnouncementsQueryHandler {
	return GetDriverAnnouncementsQueryHandler{db: db}
}

// Handle executes the query for the driver named in it.
func (h GetDriverAnnouncementsQueryHandler) Handle(
	ctx context.Context,
	query GetDriverAnnouncementsQuery,
) ([]AnnouncementResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+announcementColumns+`
		FROM announcements
		WHERE driver_id = ?
		ORDER BY created_at DESC, id
	`, query.DriverID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAnnouncementRows(rows)
}
