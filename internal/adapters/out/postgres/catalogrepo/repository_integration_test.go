package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/catalogrepo"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

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

// CatalogRepositoryIntegrationTestSuite verifies catalog item persistence
// behavior against a real PostgreSQL container.
type CatalogRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *catalogrepo.GormCatalogRepository
	tracker    *MockAggregateTracker
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&catalogrepo.ItemDTO{}))
}

func (suite *CatalogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = catalogrepo.NewGormCatalogRepository(suite.db, suite.tracker)
}

func (suite *CatalogRepositoryIntegrationTestSuite) newItem(vendorID kernel.UUID, title string) *catalog.Item {
	item, err := catalog.NewItem(kernel.NewUUID(), vendorID, title, "kg", 4000)
	suite.Require().NoError(err)
	return item
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestAdd_PersistsItem() {
	ctx := context.Background()
	item := suite.newItem(kernel.NewUUID(), "Tomato")

	suite.Require().NoError(suite.repository.Add(ctx, item))

	restored, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.True(item.ID().IsEqual(restored.ID()))
	suite.Equal("Tomato", restored.Title())
	suite.Equal(int64(4000), restored.PricePaise())
	suite.True(restored.IsAvailable())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestUpdate_PersistsClearedAvailability() {
	ctx := context.Background()
	item := suite.newItem(kernel.NewUUID(), "Tomato")
	suite.Require().NoError(suite.repository.Add(ctx, item))

	item.SetAvailable(false)
	suite.Require().NoError(suite.repository.Update(ctx, item))

	restored, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.False(restored.IsAvailable())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestRemove() {
	ctx := context.Background()
	item := suite.newItem(kernel.NewUUID(), "Tomato")
	suite.Require().NoError(suite.repository.Add(ctx, item))

	suite.Require().NoError(suite.repository.Remove(ctx, item.ID()))

	_, err := suite.repository.Get(ctx, item.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Remove(ctx, item.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetAllForVendor_OrdersByTitle() {
	ctx := context.Background()
	vendorID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newItem(vendorID, "Onion")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newItem(vendorID, "Banana")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newItem(kernel.NewUUID(), "Tomato")))

	items, err := suite.repository.GetAllForVendor(ctx, vendorID)
	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal("Banana", items[0].Title())
	suite.Equal("Onion", items[1].Title())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestCountForVendor() {
	ctx := context.Background()
	vendorID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newItem(vendorID, "Onion")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newItem(vendorID, "Banana")))

	count, err := suite.repository.CountForVendor(ctx, vendorID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	count, err = suite.repository.CountForVendor(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)
}

func TestCatalogRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryIntegrationTestSuite))
}
