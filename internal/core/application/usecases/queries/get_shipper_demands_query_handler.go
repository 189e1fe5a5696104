package queries

import (
	"context"
	"database/sql"

	"freight/internal/core/domain/model/demand"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const demandRowsQuery = `
	SELECT
		d.id,
		d.shipper_id,
		d.announcement_id,
		a.start_point,
		a.destination,
		d.status,
		d.created_at,
		d.delivered_at,
		p.title,
		p.length,
		p.width,
		p.height,
		p.weight,
		p.package_type
	FROM demands d
	LEFT JOIN announcements a ON a.id = d.announcement_id
	LEFT JOIN demand_packages p ON p.demand_id = d.id
`

// GetShipperDemandsQueryHandler reads one shipper's demands with their
// manifests, newest first.
type GetShipperDemandsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipperDemandsQueryHandler creates a handler for shipper-scoped
// demand listing.
func NewGetShipperDemandsQueryHandler(db *gorm.DB) GetShipperDemandsQueryHandler {
	return GetShipperDemandsQueryHandler{db: db}
}

// Handle executes the query for the shipper named in it. Manifest rows
// are folded into one response entry per demand.
func (h GetShipperDemandsQueryHandler) Handle(
	ctx context.Context,
	query GetShipperDemandsQuery,
) ([]DemandResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		demandRowsQuery+`
		WHERE d.shipper_id = ?
		ORDER BY d.created_at DESC, d.id, p.id
	`, query.ShipperID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return foldDemandRows(rows)
}

// foldDemandRows groups the joined demand/package rows into one
// DemandResponse per demand, preserving row order.
func foldDemandRows(rows *sql.Rows) ([]DemandResponse, error) {
	demands := make([]DemandResponse, 0)
	index := make(map[kernel.UUID]int)

	for rows.Next() {
		var (
			id, shipperID, announcementID uuid.UUID
			startPoint, destination       sql.NullString
			status                        int
			createdAt                     sql.NullTime
			deliveredAt                   sql.NullTime
			title, packageType            sql.NullString
			length, width, height, weight sql.NullFloat64
		)

		err := rows.Scan(
			&id,
			&shipperID,
			&announcementID,
			&startPoint,
			&destination,
			&status,
			&createdAt,
			&deliveredAt,
			&title,
			&length,
			&width,
			&height,
			&weight,
			&packageType,
		)
		if err != nil {
			return nil, err
		}

		demandID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		pos, seen := index[demandID]
		if !seen {
			shipper, idErr := kernel.UUIDFromBytes(shipperID[:])
			if idErr != nil {
				return nil, idErr
			}
			offer, idErr := kernel.UUIDFromBytes(announcementID[:])
			if idErr != nil {
				return nil, idErr
			}

			// NULL route columns mean the announcement has since been
			// deleted; the demand row itself still belongs in the result.
			resp := DemandResponse{
				ID:             demandID,
				ShipperID:      shipper,
				AnnouncementID: offer,
				StartPoint:     startPoint.String,
				Destination:    destination.String,
				Status:         demand.Status(status).String(),
				Packages:       make([]PackageResponse, 0),
				CreatedAt:      createdAt.Time,
			}
			if deliveredAt.Valid {
				delivered := deliveredAt.Time
				resp.DeliveredAt = &delivered
			}

			pos = len(demands)
			demands = append(demands, resp)
			index[demandID] = pos
		}

		// NULL title means the LEFT JOIN matched no package row.
		if title.Valid {
			pkg := PackageResponse{
				Title:       title.String,
				Length:      length.Float64,
				Width:       width.Float64,
				Height:      height.Float64,
				Weight:      weight.Float64,
				PackageType: packageType.String,
				Volume:      length.Float64 * width.Float64 * height.Float64,
			}
			demands[pos].Packages = append(demands[pos].Packages, pkg)
			demands[pos].Volume += pkg.Volume
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return demands, nil
}
