package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryConstructorGuards(t *testing.T) {
	t.Run("all_announcements", func(t *testing.T) {
		require.NoError(t, queries.NewGetAllAnnouncementsQuery().Validate())

		var zero queries.GetAllAnnouncementsQuery
		require.ErrorIs(t, zero.Validate(), queries.ErrGetAllAnnouncementsQueryIsNotConstructed)
	})

	t.Run("driver_announcements", func(t *testing.T) {
		driverID := kernel.NewUUID()
		q, err := queries.NewGetDriverAnnouncementsQuery(driverID)
		require.NoError(t, err)
		assert.Equal(t, driverID, q.DriverID())

		_, err = queries.NewGetDriverAnnouncementsQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("shipper_demands", func(t *testing.T) {
		shipperID := kernel.NewUUID()
		q, err := queries.NewGetShipperDemandsQuery(shipperID)
		require.NoError(t, err)
		assert.Equal(t, shipperID, q.ShipperID())

		_, err = queries.NewGetShipperDemandsQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("demands_by_announcement", func(t *testing.T) {
		announcementID := kernel.NewUUID()
		q, err := queries.NewGetDemandsByAnnouncementQuery(announcementID)
		require.NoError(t, err)
		assert.Equal(t, announcementID, q.AnnouncementID())
	})

	t.Run("history", func(t *testing.T) {
		userID := kernel.NewUUID()
		q, err := queries.NewGetHistoryQuery(userID, queries.RoleDriver)
		require.NoError(t, err)
		assert.Equal(t, queries.RoleDriver, q.Role())

		_, err = queries.NewGetHistoryQuery(userID, queries.RoleUnknown)
		require.Error(t, err)
	})
}

func TestHistoryRoleFromString(t *testing.T) {
	role, err := queries.HistoryRoleFromString("shipper")
	require.NoError(t, err)
	assert.Equal(t, queries.RoleShipper, role)

	role, err = queries.HistoryRoleFromString("driver")
	require.NoError(t, err)
	assert.Equal(t, queries.RoleDriver, role)

	_, err = queries.HistoryRoleFromString("admin")
	require.Error(t, err)
}
