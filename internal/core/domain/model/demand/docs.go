// Package demand provides the domain model for shipment requests
// submitted by shippers against an announcement's capacity.
//
// The Demand aggregate computes the volume it consumes from the
// announcement's capacity pool (the sum of length×width×height over its
// packages) and implements the request lifecycle state machine:
//
//	Pending ──> Accepted ──> InTransit ──> Delivered
//	   │            │            │
//	   └────────────┴────────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal. Capacity release on cancellation
// is gated on a genuine transition: cancelling an already-cancelled or
// delivered demand fails with a dedicated sentinel, which is what makes
// double release impossible at the ledger level.
package demand
