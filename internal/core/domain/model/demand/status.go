package demand

import (
	"errors"
	"fmt"

	"freight/internal/pkg/errs"
)

var (
	// ErrAlreadyCancelled is returned when cancelling a demand that is
	// already cancelled. The caller must not release capacity again.
	ErrAlreadyCancelled = errors.New("demand is already cancelled")

	// ErrAlreadyDelivered is returned when cancelling a delivered demand.
	ErrAlreadyDelivered = errors.New("cannot cancel a delivered demand")
)

// Status represents the lifecycle state of a demand.
//
//	Pending ──> Accepted ──> InTransit ──> Delivered
//	   │            │            │
//	   └────────────┴────────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal states.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status after the shipper submits the
	// demand; capacity is already reserved.
	StatusPending

	// StatusAccepted indicates the driver accepted the shipment.
	StatusAccepted

	// StatusInTransit indicates the shipment is on its way.
	StatusInTransit

	// StatusDelivered indicates the shipment arrived. Terminal.
	StatusDelivered

	// StatusCancelled indicates the demand was withdrawn and its
	// reservation released. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusAccepted:  "accepted",
		StatusInTransit: "in-transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusAccepted:  "accepted",
		StatusInTransit: "in-transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// Validate checks that the Status holds one of the defined lifecycle
// values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid demand status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status ("pending",
// "in-transit", ...).
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to accept", s))
	}
	return StatusAccepted, nil
}

// StartTransit transitions the status to InTransit.
//
// Valid transitions:
//   - Accepted -> InTransit
func (s Status) StartTransit() (Status, error) {
	if s != StatusAccepted {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to start transit", s))
	}
	return StatusInTransit, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered
func (s Status) Deliver() (Status, error) {
	if s != StatusInTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s))
	}
	return StatusDelivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Accepted -> Cancelled
//   - InTransit -> Cancelled
//
// Cancelling an already-cancelled demand returns ErrAlreadyCancelled and
// a delivered demand returns ErrAlreadyDelivered; both signal the caller
// that no capacity may be released for this call.
func (s Status) Cancel() (Status, error) {
	switch s {
	case StatusCancelled:
		return 0, ErrAlreadyCancelled
	case StatusDelivered:
		return 0, ErrAlreadyDelivered
	case StatusPending, StatusAccepted, StatusInTransit:
		return StatusCancelled, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid demand status", s))
	}
}
