// Package announcement provides the domain model for transport offers
// published by drivers.
//
// The Announcement aggregate owns the capacity ledger for the offer: the
// conservation invariant "sum of active reservations never exceeds the
// declared capacity" is enforced by its Reserve and Release operations,
// and the aggregate's version field lets the persistence layer commit
// the ledger decision and the updated reservation counter as a single
// conditional write.
//
// The aggregate also implements the offer lifecycle state machine:
//
//	Pending ──> Active ──> Completed
//	   │           │
//	   └───────────┴─────> Cancelled
//
// Completed and Cancelled are terminal; closed announcements reject new
// reservations.
package announcement
