package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrGetShipperDemandsQueryIsNotConstructed = errors.New(
		"GetShipperDemandsQuery must be created via NewGetShipperDemandsQuery constructor",
	)
)

// GetShipperDemandsQuery retrieves one shipper's demands joined with the
// route of the announcement each reserves against, newest first.
type GetShipperDemandsQuery struct { //nolint:recvcheck //using for validation
	shipperID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipperDemandsQuery creates a query for a shipper's own demands.
// Validates the shipper identifier.
func NewGetShipperDemandsQuery(shipperID kernel.UUID) (GetShipperDemandsQuery, error) {
	query := GetShipperDemandsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setShipperID(shipperID); err != nil {
		return GetShipperDemandsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipperDemandsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipperDemandsQueryIsNotConstructed)
}

// ShipperID returns the owning shipper's identifier.
func (q GetShipperDemandsQuery) ShipperID() kernel.UUID {
	return q.shipperID
}

func (q *GetShipperDemandsQuery) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	q.shipperID = shipperID
	return nil
}

// PackageResponse is the read model for one manifest item.
type PackageResponse struct {
	Title       string
	Length      float64
	Width       float64
	Height      float64
	Weight      float64
	PackageType string
	Volume      float64
}

// DemandResponse is the read model for a capacity demand with its
// manifest and the route of the announcement it reserves against.
type DemandResponse struct {
	ID             kernel.UUID
	ShipperID      kernel.UUID
	AnnouncementID kernel.UUID
	StartPoint     string
	Destination    string
	Status         string
	Volume         float64
	Packages       []PackageResponse
	CreatedAt      time.Time
	DeliveredAt    *time.Time
}
