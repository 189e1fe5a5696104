package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrGetDriverAnnouncementsQueryIsNotConstructed = errors.New(
		"GetDriverAnnouncementsQuery must be created via NewGetDriverAnnouncementsQuery constructor",
	)
)

// GetDriverAnnouncementsQuery retrieves the offers published by one
// driver, newest first.
type GetDriverAnnouncementsQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverAnnouncementsQuery creates a query for a driver's own
// announcements. Validates the driver identifier.
func NewGetDriverAnnouncementsQuery(driverID kernel.UUID) (GetDriverAnnouncementsQuery, error) {
	query := GetDriverAnnouncementsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDriverID(driverID); err != nil {
		return GetDriverAnnouncementsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverAnnouncementsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverAnnouncementsQueryIsNotConstructed)
}

// DriverID returns the owning driver's identifier.
func (q GetDriverAnnouncementsQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q *GetDriverAnnouncementsQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	q.driverID = driverID
	return nil
}
