package kernel

import (
	"errors"
	"fmt"
	"math"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrDimensionsAreNotConstructed is returned when validating a zero-value
// Dimensions. Instances must be created via NewDimensions.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// Dimensions is an immutable value object describing the physical size of
// a package or the maximum admissible size published on an announcement.
// Each side is expressed in the same linear unit; Volume is the product
// of the three sides.
//
// Sides must be non-negative. Whether zero sides are acceptable depends
// on the context: an announcement may publish zero max dimensions
// (meaning "no limit declared"), while a package must have strictly
// positive sides — callers use IsPositive for that stricter check.
type Dimensions struct {
	length float64
	width  float64
	height float64

	guard guard.ConstructorGuard
}

// NewDimensions creates validated Dimensions. Every side must be ≥ 0 and
// finite; negative sides are a validation error, never silently clamped.
func NewDimensions(length, width, height float64) (Dimensions, error) {
	d := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setSide("length", length, &d.length),
		d.setSide("width", width, &d.width),
		d.setSide("height", height, &d.height),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

// Length returns the length side.
func (d Dimensions) Length() float64 {
	return d.length
}

// Width returns the width side.
func (d Dimensions) Width() float64 {
	return d.width
}

// Height returns the height side.
func (d Dimensions) Height() float64 {
	return d.height
}

// Volume returns length × width × height.
func (d Dimensions) Volume() float64 {
	return d.length * d.width * d.height
}

// IsPositive reports whether every side is strictly greater than zero.
// A package with any zero side would consume no capacity, which the
// ledger treats as invalid input rather than a free reservation.
func (d Dimensions) IsPositive() bool {
	return d.length > 0 && d.width > 0 && d.height > 0
}

// Fits reports whether these dimensions fit within the given bounds on
// every side. Zero-sided bounds are treated as "no limit" for that side.
func (d Dimensions) Fits(bounds Dimensions) bool {
	fitsSide := func(side, bound float64) bool {
		return bound == 0 || side <= bound
	}
	return fitsSide(d.length, bounds.length) &&
		fitsSide(d.width, bounds.width) &&
		fitsSide(d.height, bounds.height)
}

// IsEqual reports whether two Dimensions have identical sides.
func (d Dimensions) IsEqual(other Dimensions) bool {
	return d.length == other.length && d.width == other.width && d.height == other.height
}

// String implements fmt.Stringer, e.g. "120x80x60".
func (d Dimensions) String() string {
	return fmt.Sprintf("%gx%gx%g", d.length, d.width, d.height)
}

// Validate returns ErrDimensionsAreNotConstructed for the zero value.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func (d *Dimensions) setSide(name string, value float64, target *float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidErrorWithCause(
			name, fmt.Errorf("%g is not a finite number", value))
	}
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			name, fmt.Errorf("%g is negative", value))
	}
	*target = value
	return nil
}
