package queries

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrGetHistoryQueryIsNotConstructed = errors.New(
		"GetHistoryQuery must be created via NewGetHistoryQuery constructor",
	)
)

// HistoryRole selects which side of a delivered demand the history is
// read from: the shipper who sent it or the driver who carried it.
type HistoryRole int

const (
	RoleUnknown HistoryRole = iota
	RoleShipper
	RoleDriver
)

// HistoryRoleFromString parses a role name as it appears on the wire.
func HistoryRoleFromString(s string) (HistoryRole, error) {
	switch s {
	case "shipper":
		return RoleShipper, nil
	case "driver":
		return RoleDriver, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a history role", s))
	}
}

// Validate checks the role is one of the named sides.
func (r HistoryRole) Validate() error {
	switch r {
	case RoleShipper, RoleDriver:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a known role", int(r)))
	}
}

// GetHistoryQuery retrieves a user's delivered demands, most recent
// delivery first. Shippers see what they sent, drivers what they
// carried.
type GetHistoryQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   HistoryRole

	guard guard.ConstructorGuard
}

// NewGetHistoryQuery creates a history query for the given user and
// role. Validates both.
func NewGetHistoryQuery(userID kernel.UUID, role HistoryRole) (GetHistoryQuery, error) {
	query := GetHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setUserID(userID),
		query.setRole(role),
	); err != nil {
		return GetHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetHistoryQueryIsNotConstructed)
}

// UserID returns the user whose history is read.
func (q GetHistoryQuery) UserID() kernel.UUID {
	return q.userID
}

// Role returns the side of the deliveries the history covers.
func (q GetHistoryQuery) Role() HistoryRole {
	return q.role
}

func (q *GetHistoryQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

func (q *GetHistoryQuery) setRole(role HistoryRole) error {
	if err := role.Validate(); err != nil {
		return err
	}

	q.role = role
	return nil
}
