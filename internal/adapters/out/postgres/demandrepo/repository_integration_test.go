package demandrepo_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/demandrepo"
	"freight/internal/core/domain/model/demand"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// DemandRepositoryIntegrationTestSuite provides integration tests for
// DemandRepository using PostgreSQL containers to verify persistence of
// demands and their package manifests.
type DemandRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *demandrepo.GormDemandRepository
	tracker    *MockAggregateTracker
}

func (suite *DemandRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&demandrepo.DemandDTO{},
		&demandrepo.DemandPackageDTO{},
	))
}

func (suite *DemandRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE demand_packages, demands").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = demandrepo.NewGormDemandRepository(suite.db, suite.tracker)
}

func (suite *DemandRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DemandRepositoryIntegrationTestSuite) TestAdd_ValidDemand_PersistsManifest() {
	ctx := context.Background()

	d := suite.createTestDemand(kernel.NewUUID(), 10, 5)
	suite.tracker.On("TrackAggregate", d.ID(), d).Once()

	err := suite.repository.Add(ctx, d)
	suite.Require().NoError(err)

	suite.assertDemandCount(1)
	suite.assertPackageCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DemandRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsAlreadyExists() {
	ctx := context.Background()

	d := suite.createTestDemand(kernel.NewUUID(), 10, 5)
	suite.tracker.On("TrackAggregate", d.ID(), d).Once()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	err := suite.repository.Add(ctx, d)
	suite.Require().ErrorIs(err, demandrepo.ErrAlreadyExists)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DemandRepositoryIntegrationTestSuite) TestGet_ExistingDemand_RoundTripsManifest() {
	ctx := context.Background()

	original := suite.createTestDemand(kernel.NewUUID(), 10, 5)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.ShipperID(), retrieved.ShipperID())
	suite.Equal(original.AnnouncementID(), retrieved.AnnouncementID())
	suite.Equal(original.Status(), retrieved.Status())
	suite.InDelta(original.Volume(), retrieved.Volume(), 1e-9)

	suite.Require().Len(retrieved.Packages(), len(original.Packages()))
	for i, originalPkg := range original.Packages() {
		retrievedPkg := retrieved.Packages()[i]
		suite.Equal(originalPkg.Title(), retrievedPkg.Title())
		suite.Equal(originalPkg.PackageType(), retrievedPkg.PackageType())
		suite.InDelta(originalPkg.Volume(), retrievedPkg.Volume(), 1e-9)
		suite.InDelta(originalPkg.Weight(), retrievedPkg.Weight(), 1e-9)
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DemandRepositoryIntegrationTestSuite) TestGet_NonExistentDemand_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *DemandRepositoryIntegrationTestSuite) TestUpdate_StatusChange_Persists() {
	ctx := context.Background()

	d := suite.createTestDemand(kernel.NewUUID(), 10, 5)
	suite.tracker.On("TrackAggregate", d.ID(), d).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	suite.Require().NoError(d.Accept())
	suite.Require().NoError(suite.repository.Update(ctx, d))

	retrieved, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(demand.StatusAccepted, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DemandRepositoryIntegrationTestSuite) TestUpdate_ManifestChange_ReplacesPackageRows() {
	ctx := context.Background()

	d := suite.createTestDemand(kernel.NewUUID(), 10, 5)
	suite.tracker.On("TrackAggregate", d.ID(), d).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	replacement := suite.createTestPackage("Replacement", 3)
	suite.Require().NoError(d.ReplacePackages([]demand.Package{replacement}))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	retrieved, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Packages(), 1)
	suite.Equal("Replacement", retrieved.Packages()[0].Title())

	suite.assertPackageCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DemandRepositoryIntegrationTestSuite) TestUpdate_NonExistentDemand_ReturnsNotFoundError() {
	ctx := context.Background()

	d := suite.createTestDemand(kernel.NewUUID(), 10, 5)

	err := suite.repository.Update(ctx, d)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DemandRepositoryIntegrationTestSuite) TestGetActiveByAnnouncement_ExcludesTerminalDemands() {
	ctx := context.Background()

	announcementID := kernel.NewUUID()

	pending := suite.createTestDemand(announcementID, 10, 5)

	accepted := suite.createTestDemand(announcementID, 8, 4)
	suite.Require().NoError(accepted.Accept())

	cancelled := suite.createTestDemand(announcementID, 6, 3)
	suite.Require().NoError(cancelled.Cancel())

	delivered := suite.createTestDemand(announcementID, 4, 2)
	suite.Require().NoError(delivered.Accept())
	suite.Require().NoError(delivered.StartTransit())
	suite.Require().NoError(delivered.Deliver(time.Now().UTC()))

	otherAnnouncement := suite.createTestDemand(kernel.NewUUID(), 2, 1)

	for _, d := range []*demand.Demand{pending, accepted, cancelled, delivered, otherAnnouncement} {
		suite.tracker.On("TrackAggregate", d.ID(), d).Once()
		suite.Require().NoError(suite.repository.Add(ctx, d))
	}

	active, err := suite.repository.GetActiveByAnnouncement(ctx, announcementID)
	suite.Require().NoError(err)

	suite.Require().Len(active, 2)
	activeIDs := map[kernel.UUID]bool{}
	for _, d := range active {
		activeIDs[d.ID()] = true
		suite.NotEmpty(d.Packages(), "active demands load their manifest")
	}
	suite.True(activeIDs[pending.ID()])
	suite.True(activeIDs[accepted.ID()])

	suite.tracker.AssertExpectations(suite.T())
}

// createTestDemand creates a pending demand on the given announcement
// with two cubic packages of the given side lengths.
func (suite *DemandRepositoryIntegrationTestSuite) createTestDemand(
	announcementID kernel.UUID, sides ...float64,
) *demand.Demand {
	packages := make([]demand.Package, 0, len(sides))
	for _, side := range sides {
		packages = append(packages, suite.createTestPackage("Crate", side))
	}

	d, err := demand.NewDemand(kernel.NewUUID(), kernel.NewUUID(), announcementID, packages)
	suite.Require().NoError(err)

	return d
}

// createTestPackage creates a cubic package with the given side length.
func (suite *DemandRepositoryIntegrationTestSuite) createTestPackage(
	title string, side float64,
) demand.Package {
	dims, err := kernel.NewDimensions(side, side, side)
	suite.Require().NoError(err)

	p, err := demand.NewPackage(title, dims, 1, "standard")
	suite.Require().NoError(err)

	return p
}

// assertDemandCount verifies the number of demands in the database.
func (suite *DemandRepositoryIntegrationTestSuite) assertDemandCount(expected int) {
	var count int64
	err := suite.db.Model(&demandrepo.DemandDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertPackageCount verifies the number of manifest rows in the database.
func (suite *DemandRepositoryIntegrationTestSuite) assertPackageCount(expected int) {
	var count int64
	err := suite.db.Model(&demandrepo.DemandPackageDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestDemandRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DemandRepositoryIntegrationTestSuite))
}
