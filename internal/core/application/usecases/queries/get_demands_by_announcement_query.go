package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrGetDemandsByAnnouncementQueryIsNotConstructed = errors.New(
		"GetDemandsByAnnouncementQuery must be created via NewGetDemandsByAnnouncementQuery constructor",
	)
)

// GetDemandsByAnnouncementQuery retrieves every demand submitted against
// one announcement. Used by the driver reviewing what their offer holds.
type GetDemandsByAnnouncementQuery struct { //nolint:recvcheck //using for validation
	announcementID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDemandsByAnnouncementQuery creates a query for one
// announcement's demands. Validates the announcement identifier.
func NewGetDemandsByAnnouncementQuery(announcementID kernel.UUID) (GetDemandsByAnnouncementQuery, error) {
	query := GetDemandsByAnnouncementQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setAnnouncementID(announcementID); err != nil {
		return GetDemandsByAnnouncementQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDemandsByAnnouncementQuery) Validate() error {
	return q.guard.Validate(ErrGetDemandsByAnnouncementQueryIsNotConstructed)
}

// AnnouncementID returns the announcement whose demands are listed.
func (q GetDemandsByAnnouncementQuery) AnnouncementID() kernel.UUID {
	return q.announcementID
}

func (q *GetDemandsByAnnouncementQuery) setAnnouncementID(announcementID kernel.UUID) error {
	if err := announcementID.Validate(); err != nil {
		return err
	}

	q.announcementID = announcementID
	return nil
}
