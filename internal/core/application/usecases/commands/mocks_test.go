package commands_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/announcement"
	"freight/internal/core/domain/model/demand"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAnnouncementRepository struct{ mock.Mock }

func (m *MockAnnouncementRepository) Add(ctx context.Context, a *announcement.Announcement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) Update(ctx context.Context, a *announcement.Announcement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) Get(ctx context.Context, id kernel.UUID) (*announcement.Announcement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*announcement.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) GetAllPendingDue(
	ctx context.Context, now time.Time,
) ([]*announcement.Announcement, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*announcement.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDemandRepository struct{ mock.Mock }

func (m *MockDemandRepository) Add(ctx context.Context, d *demand.Demand) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDemandRepository) Update(ctx context.Context, d *demand.Demand) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDemandRepository) Get(ctx context.Context, id kernel.UUID) (*demand.Demand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*demand.Demand), args.Error(1)
}

func (m *MockDemandRepository) GetActiveByAnnouncement(
	ctx context.Context, announcementID kernel.UUID,
) ([]*demand.Demand, error) {
	args := m.Called(ctx, announcementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*demand.Demand), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) AnnouncementRepository() ports.AnnouncementRepository {
	args := m.Called()
	return args.Get(0).(ports.AnnouncementRepository)
}

func (m *MockUoW) DemandRepository() ports.DemandRepository {
	args := m.Called()
	return args.Get(0).(ports.DemandRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockAnnouncementUoWFactory struct{ mock.Mock }

func (m *MockAnnouncementUoWFactory) Create() commands.AnnouncementUoW {
	args := m.Called()
	return args.Get(0).(commands.AnnouncementUoW)
}

func timeTomorrow() time.Time {
	return time.Now().Add(24 * time.Hour)
}

func testRoute(t *testing.T) kernel.Route {
	t.Helper()
	route, err := kernel.NewRoute("Lyon", []string{"Dijon"}, "Paris")
	require.NoError(t, err)
	return route
}

// testAnnouncement builds a pending offer owned by driverID with the
// given capacity and no dimension limits.
func testAnnouncement(t *testing.T, driverID kernel.UUID, capacity float64) *announcement.Announcement {
	t.Helper()
	noLimit, err := kernel.NewDimensions(0, 0, 0)
	require.NoError(t, err)

	offer, err := announcement.NewAnnouncement(
		kernel.NewUUID(), driverID, testRoute(t), noLimit,
		[]string{"standard"}, capacity,
		time.Now().Add(24*time.Hour), nil,
	)
	require.NoError(t, err)
	return offer
}

// testCube builds a package whose volume is side cubed.
func testCube(t *testing.T, side float64) demand.Package {
	t.Helper()
	dims, err := kernel.NewDimensions(side, side, side)
	require.NoError(t, err)
	p, err := demand.NewPackage("crate", dims, 1, "standard")
	require.NoError(t, err)
	return p
}

// testDemandFor builds a pending demand against the given announcement.
func testDemandFor(t *testing.T, shipperID kernel.UUID, offer *announcement.Announcement, packages ...demand.Package) *demand.Demand {
	t.Helper()
	d, err := demand.NewDemand(kernel.NewUUID(), shipperID, offer.ID(), packages)
	require.NoError(t, err)
	return d
}
