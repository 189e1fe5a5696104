// Package errs provides standardized error types for the freight ledger.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the common failure classes of the core:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or violates a rule
//   - ValueIsOutOfRangeError: a value falls outside its bounds
//   - ObjectNotFoundError: a referenced object does not exist
//   - VersionIsInvalidError: a persisted version value is unusable
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct carrying the error details
//   - constructors with and without an underlying cause
//   - Error() for formatting and Unwrap() rooting the type at its sentinel
//
// Business rejections specific to one aggregate (insufficient capacity,
// illegal status transitions) are declared as sentinels next to that
// aggregate, not here.
package errs
