// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"errors"

	"freight/internal/core/ports"
)

// ErrNotOwner is returned when the acting driver or shipper does not own
// the aggregate a command targets. Handlers check ownership before any
// state change.
var ErrNotOwner = errors.New("actor does not own this resource")

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AnnouncementRepoFactory provides access to the announcement repository within a transaction.
	AnnouncementRepoFactory interface {
		AnnouncementRepository() ports.AnnouncementRepository
	}

	// DemandRepoFactory provides access to the demand repository within a transaction.
	DemandRepoFactory interface {
		DemandRepository() ports.DemandRepository
	}

	// AnnouncementUoW manages transactions for announcement-only operations.
	// Used when commands only modify announcement aggregates.
	AnnouncementUoW interface {
		TxManager
		AnnouncementRepoFactory
	}

	// AnnouncementUoWFactory creates new announcement unit of work instances.
	AnnouncementUoWFactory interface {
		Create() AnnouncementUoW
	}

	// UoW manages transactions across both announcement and demand aggregates.
	// Every command that settles capacity with the ledger uses this: the
	// demand change and the ledger change must land in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   announcementRepo := uow.AnnouncementRepository()
	//   demandRepo := uow.DemandRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		AnnouncementRepoFactory
		DemandRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
