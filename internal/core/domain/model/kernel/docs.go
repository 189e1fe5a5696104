// Package kernel provides core domain primitives for the freight ledger.
//
// It contains the value objects shared by every aggregate:
//   - UUID: identity for entities and aggregates
//   - Dimensions: length/width/height with volume math
//   - Route: start point, ordered waypoints and destination
//
// All kernel types are immutable value objects created through
// constructor functions; zero values fail validation.
package kernel
