package demand

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrPackageIsNotConstructed is returned when validating a zero-value
// Package. Instances must be created via NewPackage.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// Package is an immutable value object describing one item in a demand's
// manifest. Its volume is what the item consumes from the announcement's
// capacity pool.
//
// Every dimension side must be strictly positive: a package with a zero
// or missing side would reserve no capacity, which the ledger treats as
// malformed input rather than a free ride.
type Package struct {
	title       string
	dimensions  kernel.Dimensions
	weight      float64
	packageType string

	guard guard.ConstructorGuard
}

// NewPackage creates a validated Package. The title is required, the
// dimensions must be positive on every side, the weight must be ≥ 0 and
// the type tag is lowercased.
func NewPackage(title string, dimensions kernel.Dimensions, weight float64, packageType string) (Package, error) {
	p := Package{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setTitle(title),
		p.setDimensions(dimensions),
		p.setWeight(weight),
	); err != nil {
		return Package{}, err
	}

	p.packageType = strings.ToLower(strings.TrimSpace(packageType))
	return p, nil
}

// Title returns the human-readable package description.
func (p Package) Title() string {
	return p.title
}

// Dimensions returns the package's physical size.
func (p Package) Dimensions() kernel.Dimensions {
	return p.dimensions
}

// Weight returns the package weight.
func (p Package) Weight() float64 {
	return p.weight
}

// PackageType returns the lowercase type tag, empty when untyped.
func (p Package) PackageType() string {
	return p.packageType
}

// Volume returns the capacity this package consumes.
func (p Package) Volume() float64 {
	return p.dimensions.Volume()
}

// Validate returns ErrPackageIsNotConstructed for the zero value.
func (p Package) Validate() error {
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

func (p *Package) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.title = title
	return nil
}

func (p *Package) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	if !dimensions.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("dimensions",
			fmt.Errorf("%s has a non-positive side", dimensions))
	}
	p.dimensions = dimensions
	return nil
}

func (p *Package) setWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%g is not a finite number", weight))
	}
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%g is negative", weight))
	}
	p.weight = weight
	return nil
}
