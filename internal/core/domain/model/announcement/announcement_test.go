package announcement_test

import (
	"math"
	"testing"
	"time"

	"freight/internal/core/domain/model/announcement"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoute(t *testing.T) kernel.Route {
	t.Helper()
	route, err := kernel.NewRoute("Tangier", []string{"Rabat"}, "Marrakesh")
	require.NoError(t, err)
	return route
}

func testDimensions(t *testing.T, l, w, h float64) kernel.Dimensions {
	t.Helper()
	d, err := kernel.NewDimensions(l, w, h)
	require.NoError(t, err)
	return d
}

func newTestAnnouncement(t *testing.T, capacity float64) *announcement.Announcement {
	t.Helper()
	a, err := announcement.NewAnnouncement(
		kernel.NewUUID(),
		kernel.NewUUID(),
		testRoute(t),
		testDimensions(t, 200, 200, 200),
		[]string{"fragile", "standard"},
		capacity,
		time.Now().AddDate(0, 0, 1),
		nil,
	)
	require.NoError(t, err)
	return a
}

func TestNewAnnouncement(t *testing.T) {
	t.Run("valid_announcement_starts_pending_with_empty_ledger", func(t *testing.T) {
		a := newTestAnnouncement(t, 100)

		assert.Equal(t, announcement.StatusPending, a.Status())
		assert.Zero(t, a.ReservedCapacity())
		assert.InDelta(t, 100.0, a.AvailableCapacity(), 1e-9)
		assert.Equal(t, 1, a.Version())
		assert.Nil(t, a.EndDate())
	})

	t.Run("package_types_are_normalized", func(t *testing.T) {
		a, err := announcement.NewAnnouncement(
			kernel.NewUUID(), kernel.NewUUID(),
			testRoute(t), testDimensions(t, 0, 0, 0),
			[]string{" Fragile ", "FRAGILE", "bulk", ""},
			50,
			time.Now().AddDate(0, 0, 1),
			nil,
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"fragile", "bulk"}, a.PackageTypes())
	})

	t.Run("non_positive_capacity_rejected", func(t *testing.T) {
		_, err := announcement.NewAnnouncement(
			kernel.NewUUID(), kernel.NewUUID(),
			testRoute(t), testDimensions(t, 1, 1, 1),
			nil, 0,
			time.Now().AddDate(0, 0, 1),
			nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("non_finite_capacity_rejected", func(t *testing.T) {
		for _, capacity := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := announcement.NewAnnouncement(
				kernel.NewUUID(), kernel.NewUUID(),
				testRoute(t), testDimensions(t, 1, 1, 1),
				nil, capacity,
				time.Now().AddDate(0, 0, 1),
				nil,
			)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "capacity %g", capacity)
		}
	})

	t.Run("past_start_date_rejected", func(t *testing.T) {
		_, err := announcement.NewAnnouncement(
			kernel.NewUUID(), kernel.NewUUID(),
			testRoute(t), testDimensions(t, 1, 1, 1),
			nil, 10,
			time.Now().AddDate(0, 0, -2),
			nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("end_date_must_follow_start_date", func(t *testing.T) {
		start := time.Now().AddDate(0, 0, 5)
		end := start.AddDate(0, 0, -1)
		_, err := announcement.NewAnnouncement(
			kernel.NewUUID(), kernel.NewUUID(),
			testRoute(t), testDimensions(t, 1, 1, 1),
			nil, 10,
			start, &end,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid_driver_id_rejected", func(t *testing.T) {
		_, err := announcement.NewAnnouncement(
			kernel.NewUUID(), kernel.UUID{},
			testRoute(t), testDimensions(t, 1, 1, 1),
			nil, 10,
			time.Now().AddDate(0, 0, 1),
			nil,
		)
		require.Error(t, err)
	})
}

func TestAnnouncement_Reserve(t *testing.T) {
	t.Run("debits_available_capacity", func(t *testing.T) {
		a := newTestAnnouncement(t, 100)

		require.NoError(t, a.Reserve(60))
		assert.InDelta(t, 60.0, a.ReservedCapacity(), 1e-9)
		assert.InDelta(t, 40.0, a.AvailableCapacity(), 1e-9)
	})

	t.Run("rejects_volume_exceeding_available", func(t *testing.T) {
		a := newTestAnnouncement(t, 100)
		require.NoError(t, a.Reserve(60))

		err := a.Reserve(60)
		require.ErrorIs(t, err, announcement.ErrInsufficientCapacity)
		assert.InDelta(t, 60.0, a.ReservedCapacity(), 1e-9)
	})

	t.Run("allows_exact_fit", func(t *testing.T) {
		a := newTestAnnouncement(t, 100)
		require.NoError(t, a.Reserve(100))
		assert.Zero(t, a.AvailableCapacity())
	})

	t.Run("rejects_non_positive_volume", func(t *testing.T) {
		a := newTestAnnouncement(t, 100)
		require.ErrorIs(t, a.Reserve(0), errs.ErrValueIsInvalid)
		require.ErrorIs(t, a.Reserve(-5), errs.ErrValueIsInvalid)
	})

	t.Run("rejects_reservation_on_closed_announcement", func(t *testing.T) {
		a := newTestAnnouncement(t, 100)
		require.NoError(t, a.Cancel())

		require.ErrorIs(t, a.Reserve(10), announcement.ErrAnnouncementClosed)
	})
}

func TestAnnouncement_Release(t *testing.T) {
	t.Run("credits_capacity_back", func(t *testing.T) {
		a := newTestAnnouncement(t, 100)
		require.NoError(t, a.Reserve(70))

		require.NoError(t, a.Release(70))
		assert.Zero(t, a.ReservedCapacity())
		assert.InDelta(t, 100.0, a.AvailableCapacity(), 1e-9)
	})

	t.Run("rejects_release_beyond_reserved", func(t *testing.T) {
		a := newTestAnnouncement(t, 100)
		require.NoError(t, a.Reserve(30))

		require.ErrorIs(t, a.Release(31), announcement.ErrReleaseExceedsReserved)
		assert.InDelta(t, 30.0, a.ReservedCapacity(), 1e-9)
	})

	t.Run("rejects_non_positive_volume", func(t *testing.T) {
		a := newTestAnnouncement(t, 100)
		require.ErrorIs(t, a.Release(0), errs.ErrValueIsInvalid)
	})
}

// Conservation invariant: over any sequence of reserves and releases,
// reserved capacity never exceeds declared capacity and never drops
// below zero.
func TestAnnouncement_ConservationInvariant(t *testing.T) {
	a := newTestAnnouncement(t, 50)

	ops := []struct {
		reserve bool
		volume  float64
		wantErr bool
	}{
		{reserve: true, volume: 20},
		{reserve: true, volume: 20},
		{reserve: true, volume: 20, wantErr: true}, // would exceed 50
		{reserve: false, volume: 20},
		{reserve: true, volume: 30},
		{reserve: false, volume: 50},
		{reserve: false, volume: 1, wantErr: true}, // nothing left to release
	}

	for i, op := range ops {
		var err error
		if op.reserve {
			err = a.Reserve(op.volume)
		} else {
			err = a.Release(op.volume)
		}
		if op.wantErr {
			require.Error(t, err, "op %d", i)
		} else {
			require.NoError(t, err, "op %d", i)
		}

		assert.GreaterOrEqual(t, a.ReservedCapacity(), 0.0, "op %d", i)
		assert.LessOrEqual(t, a.ReservedCapacity(), a.DeclaredCapacity(), "op %d", i)
	}
}

func TestAnnouncement_Lifecycle(t *testing.T) {
	t.Run("start_then_complete_stamps_end_date", func(t *testing.T) {
		a := newTestAnnouncement(t, 10)

		require.NoError(t, a.Start())
		assert.Equal(t, announcement.StatusActive, a.Status())

		now := time.Now()
		require.NoError(t, a.Complete(now))
		assert.Equal(t, announcement.StatusCompleted, a.Status())
		require.NotNil(t, a.EndDate())
		assert.WithinDuration(t, now, *a.EndDate(), time.Second)
	})

	t.Run("completed_announcement_rejects_reservations", func(t *testing.T) {
		a := newTestAnnouncement(t, 10)
		require.NoError(t, a.Start())
		require.NoError(t, a.Complete(time.Now()))

		require.ErrorIs(t, a.Reserve(1), announcement.ErrAnnouncementClosed)
	})

	t.Run("cancel_from_pending_and_active", func(t *testing.T) {
		a := newTestAnnouncement(t, 10)
		require.NoError(t, a.Cancel())

		b := newTestAnnouncement(t, 10)
		require.NoError(t, b.Start())
		require.NoError(t, b.Cancel())
	})

	t.Run("cancel_of_terminal_announcement_fails", func(t *testing.T) {
		a := newTestAnnouncement(t, 10)
		require.NoError(t, a.Cancel())
		require.Error(t, a.Cancel())
	})
}

func TestAnnouncement_FitsPackage(t *testing.T) {
	a := newTestAnnouncement(t, 100)

	small := testDimensions(t, 10, 10, 10)
	assert.True(t, a.FitsPackage(small))

	oversized := testDimensions(t, 201, 10, 10)
	assert.False(t, a.FitsPackage(oversized))
}

func TestAnnouncement_Ownership(t *testing.T) {
	driverID := kernel.NewUUID()
	a, err := announcement.NewAnnouncement(
		kernel.NewUUID(), driverID,
		testRoute(t), testDimensions(t, 1, 1, 1),
		nil, 10,
		time.Now().AddDate(0, 0, 1),
		nil,
	)
	require.NoError(t, err)

	assert.True(t, a.IsOwnedBy(driverID))
	assert.False(t, a.IsOwnedBy(kernel.NewUUID()))
}

func TestRestoreAnnouncement(t *testing.T) {
	t.Run("restores_ledger_and_status", func(t *testing.T) {
		id := kernel.NewUUID()
		driverID := kernel.NewUUID()
		createdAt := time.Now().AddDate(0, 0, -30)
		startDate := time.Now().AddDate(0, 0, -10)

		a, err := announcement.RestoreAnnouncement(
			id, driverID,
			testRoute(t), testDimensions(t, 1, 1, 1),
			[]string{"bulk"},
			100, 40,
			startDate, nil,
			announcement.StatusActive,
			createdAt, 7,
		)
		require.NoError(t, err)

		assert.InDelta(t, 40.0, a.ReservedCapacity(), 1e-9)
		assert.Equal(t, announcement.StatusActive, a.Status())
		assert.Equal(t, 7, a.Version())
		assert.Equal(t, createdAt, a.CreatedAt())
	})

	t.Run("rejects_reserved_above_declared", func(t *testing.T) {
		_, err := announcement.RestoreAnnouncement(
			kernel.NewUUID(), kernel.NewUUID(),
			testRoute(t), testDimensions(t, 1, 1, 1),
			nil,
			100, 101,
			time.Now(), nil,
			announcement.StatusActive,
			time.Now(), 1,
		)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_invalid_version", func(t *testing.T) {
		_, err := announcement.RestoreAnnouncement(
			kernel.NewUUID(), kernel.NewUUID(),
			testRoute(t), testDimensions(t, 1, 1, 1),
			nil,
			100, 0,
			time.Now(), nil,
			announcement.StatusPending,
			time.Now(), 0,
		)
		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

func TestAnnouncement_Validate(t *testing.T) {
	var a announcement.Announcement
	require.ErrorIs(t, a.Validate(), announcement.ErrAnnouncementIsNotConstructed)

	var nilA *announcement.Announcement
	require.ErrorIs(t, nilA.Validate(), announcement.ErrAnnouncementIsNotConstructed)
}
