package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"hatid/internal/adapters/out/postgres/orderrepo"
	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/domain/model/order"
	"hatid/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(time.Now().UTC())

	// Set expectations on mock
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order was persisted
	suite.assertOrderCount(1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(time.Now().UTC())
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.CustomerID(), retrieved.CustomerID())
	suite.Equal(testOrder.ServiceType(), retrieved.ServiceType())
	suite.Equal(testOrder.ServiceFee().Centavos(), retrieved.ServiceFee().Centavos())
	suite.Equal(testOrder.TotalAmount().Centavos(), retrieved.TotalAmount().Centavos())
	suite.Equal(testOrder.Street(), retrieved.Street())
	suite.Equal(order.Pending, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownOrder_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusChange_Persists() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(time.Now().UTC())
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.TransitionTo(order.Confirmed, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder_ReturnsNotFound() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(time.Now().UTC())

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInConfirmedStatus_ReturnsOldestFirst() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	now := time.Now().UTC()
	older := suite.createTestOrder(now.Add(-2 * time.Hour))
	newer := suite.createTestOrder(now.Add(-1 * time.Hour))
	pending := suite.createTestOrder(now)

	suite.Require().NoError(older.TransitionTo(order.Confirmed, now))
	suite.Require().NoError(newer.TransitionTo(order.Confirmed, now))

	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	confirmed, err := suite.repository.GetAllInConfirmedStatus(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(confirmed, 2)
	suite.Equal(older.ID(), confirmed[0].ID())
	suite.Equal(newer.ID(), confirmed[1].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingOlderThan_FiltersByCutoff() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	now := time.Now().UTC()
	stale := suite.createTestOrder(now.Add(-3 * time.Hour))
	fresh := suite.createTestOrder(now.Add(-10 * time.Minute))
	confirmed := suite.createTestOrder(now.Add(-3 * time.Hour))
	suite.Require().NoError(confirmed.TransitionTo(order.Confirmed, now))

	suite.Require().NoError(suite.repository.Add(ctx, stale))
	suite.Require().NoError(suite.repository.Add(ctx, fresh))
	suite.Require().NoError(suite.repository.Add(ctx, confirmed))

	expired, err := suite.repository.GetAllPendingOlderThan(ctx, now.Add(-time.Hour))
	suite.Require().NoError(err)

	suite.Require().Len(expired, 1)
	suite.Equal(stale.ID(), expired[0].ID())
}

// createTestOrder creates a valid pending order for testing purposes.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(createdAt time.Time) *order.Order {
	serviceFee, err := kernel.NewMoney(4900)
	suite.Require().NoError(err)
	totalAmount, err := kernel.NewMoney(25000)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.ServiceTypeDelivery,
		serviceFee,
		totalAmount,
		"123 Mabini St, Makati",
		createdAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of order rows in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
