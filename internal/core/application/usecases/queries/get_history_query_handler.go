package queries

import (
	"context"

	"freight/internal/core/domain/model/demand"

	"gorm.io/gorm"
)

// GetHistoryQueryHandler reads a user's delivered demands, joined with
// the announcement that carried them, most recent delivery first.
type GetHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetHistoryQueryHandler creates a handler for delivery history
// queries.
func NewGetHistoryQueryHandler(db *gorm.DB) GetHistoryQueryHandler {
	return GetHistoryQueryHandler{db: db}
}

// Handle executes the history query. The role decides which identifier
// column the user is matched against: shippers own the demand, drivers
// own the announcement it travelled on.
func (h GetHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetHistoryQuery,
) ([]DemandResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ownerColumn := "d.shipper_id"
	if query.Role() == RoleDriver {
		ownerColumn = "a.driver_id"
	}

	rows, err := h.db.WithContext(ctx).Raw(
		demandRowsQuery+`
		WHERE `+ownerColumn+` = ? AND d.status = ?
		ORDER BY d.delivered_at DESC, d.id, p.id
	`, query.UserID().String(), int(demand.StatusDelivered)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return foldDemandRows(rows)
}
