package announcement

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of an announcement.
// It implements a state machine with defined transitions:
//
//	Pending ──> Active ──> Completed
//	   │           │
//	   └───────────┴─────> Cancelled
//
// Completed and Cancelled are terminal states.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly published offer;
	// the trip has not started yet but demands may already reserve capacity.
	StatusPending

	// StatusActive indicates the driver has marked the trip underway.
	StatusActive

	// StatusCompleted indicates the trip finished. Terminal.
	StatusCompleted

	// StatusCancelled indicates the offer was withdrawn. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusActive:    "active",
		StatusCompleted: "completed",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusActive:    "active",
		StatusCompleted: "completed",
		StatusCancelled: "cancelled",
	}
}

// Validate checks that the Status holds one of the defined lifecycle
// values. StatusUnknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid announcement status", s))
	}
	return nil
}

// String returns the lowercase name of the status, matching the values
// stored by the original wire format ("pending", "active", ...).
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Start transitions the status to Active.
//
// Valid transitions:
//   - Pending -> Active
func (s Status) Start() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to start", s))
	}
	return StatusActive, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Active -> Completed
func (s Status) Complete() (Status, error) {
	if s != StatusActive {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s))
	}
	return StatusCompleted, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Active -> Cancelled
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s))
	}
	return StatusCancelled, nil
}
