package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"freight/internal/core/domain/model/announcement"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const announcementColumns = `
	id,
	driver_id,
	start_point,
	waypoints,
	destination,
	max_length,
	max_width,
	max_height,
	package_types,
	declared_capacity,
	reserved_capacity,
	start_date,
	end_date,
	status,
	created_at
`

// GetAllAnnouncementsQueryHandler reads every transport offer from the
// database, newest first.
//
// Example:
//
//	handler := NewGetAllAnnouncementsQueryHandler(db)
//	offers, err := handler.Handle(ctx, NewGetAllAnnouncementsQuery())
//	if err != nil {
//	    log.Printf("Failed to list announcements: %v", err)
//	    return err
//	}
type GetAllAnnouncementsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllAnnouncementsQueryHandler creates a handler for announcement
// listing. Requires a GORM database connection for query execution.
func NewGetAllAnnouncementsQueryHandler(db *gorm.DB) GetAllAnnouncementsQueryHandler {
	return GetAllAnnouncementsQueryHandler{db: db}
}

// Handle executes the query. Results are ordered by creation time
// descending so freshly published offers come first.
func (h GetAllAnnouncementsQueryHandler) Handle(
	ctx context.Context,
	query GetAllAnnouncementsQuery,
) ([]AnnouncementResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+announcementColumns+`
		FROM announcements
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAnnouncementRows(rows)
}

func scanAnnouncementRows(rows *sql.Rows) ([]AnnouncementResponse, error) {
	announcements := make([]AnnouncementResponse, 0)

	for rows.Next() {
		var (
			id, driverID       uuid.UUID
			waypointsRaw       []byte
			packageTypesRaw    []byte
			endDate            sql.NullTime
			status             int
			resp               AnnouncementResponse
			startDate, created time.Time
		)

		err := rows.Scan(
			&id,
			&driverID,
			&resp.StartPoint,
			&waypointsRaw,
			&resp.Destination,
			&resp.MaxLength,
			&resp.MaxWidth,
			&resp.MaxHeight,
			&packageTypesRaw,
			&resp.DeclaredCapacity,
			&resp.ReservedCapacity,
			&startDate,
			&endDate,
			&status,
			&created,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.DriverID, err = kernel.UUIDFromBytes(driverID[:])
		if err != nil {
			return nil, err
		}

		if len(waypointsRaw) > 0 {
			if err = json.Unmarshal(waypointsRaw, &resp.Waypoints); err != nil {
				return nil, err
			}
		}
		if len(packageTypesRaw) > 0 {
			if err = json.Unmarshal(packageTypesRaw, &resp.PackageTypes); err != nil {
				return nil, err
			}
		}

		resp.AvailableCapacity = resp.DeclaredCapacity - resp.ReservedCapacity
		resp.StartDate = startDate
		if endDate.Valid {
			end := endDate.Time
			resp.EndDate = &end
		}
		resp.Status = announcement.Status(status).String()
		resp.CreatedAt = created

		announcements = append(announcements, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return announcements, nil
}
