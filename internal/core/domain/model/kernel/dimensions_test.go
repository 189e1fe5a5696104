package kernel_test

import (
	"math"
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDimensions(t *testing.T) {
	t.Run("valid_sides", func(t *testing.T) {
		d, err := kernel.NewDimensions(120, 80, 60)

		require.NoError(t, err)
		assert.InDelta(t, 576000.0, d.Volume(), 1e-9)
		assert.True(t, d.IsPositive())
		assert.Equal(t, "120x80x60", d.String())
	})

	t.Run("zero_sides_allowed_but_not_positive", func(t *testing.T) {
		d, err := kernel.NewDimensions(0, 0, 0)

		require.NoError(t, err)
		assert.False(t, d.IsPositive())
		assert.Zero(t, d.Volume())
	})

	t.Run("negative_side_rejected", func(t *testing.T) {
		_, err := kernel.NewDimensions(10, -1, 5)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("non_finite_side_rejected", func(t *testing.T) {
		for _, side := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := kernel.NewDimensions(10, side, 5)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "side %g", side)
		}
	})
}

func TestDimensions_Fits(t *testing.T) {
	bounds, err := kernel.NewDimensions(100, 100, 100)
	require.NoError(t, err)

	t.Run("smaller_package_fits", func(t *testing.T) {
		d, dimErr := kernel.NewDimensions(50, 100, 99)
		require.NoError(t, dimErr)
		assert.True(t, d.Fits(bounds))
	})

	t.Run("oversized_side_does_not_fit", func(t *testing.T) {
		d, dimErr := kernel.NewDimensions(50, 101, 10)
		require.NoError(t, dimErr)
		assert.False(t, d.Fits(bounds))
	})

	t.Run("zero_bound_means_no_limit", func(t *testing.T) {
		unlimited, dimErr := kernel.NewDimensions(0, 0, 0)
		require.NoError(t, dimErr)

		huge, dimErr := kernel.NewDimensions(1000, 1000, 1000)
		require.NoError(t, dimErr)
		assert.True(t, huge.Fits(unlimited))
	})
}

func TestDimensions_Validate(t *testing.T) {
	t.Run("constructed_dimensions_are_valid", func(t *testing.T) {
		d, err := kernel.NewDimensions(1, 2, 3)
		require.NoError(t, err)
		require.NoError(t, d.Validate())
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var d kernel.Dimensions
		require.ErrorIs(t, d.Validate(), kernel.ErrDimensionsAreNotConstructed)
	})
}
