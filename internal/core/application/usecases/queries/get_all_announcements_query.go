// Package queries contains read-only projections over the freight
// database. Query handlers bypass the domain aggregates and read
// denormalized rows directly; they carry no invariant responsibility.
package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrGetAllAnnouncementsQueryIsNotConstructed = errors.New(
		"GetAllAnnouncementsQuery must be created via NewGetAllAnnouncementsQuery constructor",
	)
)

// GetAllAnnouncementsQuery retrieves every published transport offer,
// newest first. Used by shippers browsing for capacity.
//
// Example:
//
//	query := NewGetAllAnnouncementsQuery()
//	handler := NewGetAllAnnouncementsQueryHandler(db)
//
//	offers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list announcements: %w", err)
//	}
//	for _, offer := range offers {
//	    fmt.Printf("%s -> %s: %.0f free\n",
//	        offer.StartPoint, offer.Destination, offer.AvailableCapacity)
//	}
type GetAllAnnouncementsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllAnnouncementsQuery creates a query to list all announcements.
// This is a parameterless query.
func NewGetAllAnnouncementsQuery() GetAllAnnouncementsQuery {
	return GetAllAnnouncementsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllAnnouncementsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAnnouncementsQueryIsNotConstructed)
}

// AnnouncementResponse is the read model for a transport offer.
// AvailableCapacity is computed from the ledger columns at read time,
// it is never stored.
type AnnouncementResponse struct {
	ID                kernel.UUID
	DriverID          kernel.UUID
	StartPoint        string
	Waypoints         []string
	Destination       string
	MaxLength         float64
	MaxWidth          float64
	MaxHeight         float64
	PackageTypes      []string
	DeclaredCapacity  float64
	ReservedCapacity  float64
	AvailableCapacity float64
	StartDate         time.Time
	EndDate           *time.Time
	Status            string
	CreatedAt         time.Time
}
