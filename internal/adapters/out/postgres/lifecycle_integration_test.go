package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	postgres_adapter "ruralcart/internal/adapters/out/postgres"
	"ruralcart/internal/adapters/out/postgres/custodyrepo"
	"ruralcart/internal/adapters/out/postgres/driverrepo"
	"ruralcart/internal/adapters/out/postgres/orderrepo"
	"ruralcart/internal/core/application/usecases/commands"
	"ruralcart/internal/core/domain/model/custody"
	"ruralcart/internal/core/domain/model/order"
	"ruralcart/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// uowFactoryAdapter narrows the ports-level factory to the command-level
// factory interfaces.
type uowFactoryAdapter struct {
	inner *postgres_adapter.GormUnitOfWorkFactory
}

func (f uowFactoryAdapter) Create() commands.UoW {
	return f.inner.Create()
}

type orderUoWFactoryAdapter struct {
	inner *postgres_adapter.GormUnitOfWorkFactory
}

func (f orderUoWFactoryAdapter) Create() commands.OrderUoW {
	return f.inner.Create()
}

type driverUoWFactoryAdapter struct {
	inner *postgres_adapter.GormUnitOfWorkFactory
}

func (f driverUoWFactoryAdapter) Create() commands.DriverUoW {
	return f.inner.Create()
}

// recordingNotifier captures outbound messages, safe for concurrent sends.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) SendMessageToUser(_ context.Context, _ int64, text string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, text)
	return true
}

func (n *recordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

// OrderLifecycleIntegrationTestSuite drives the full order lifecycle through
// the command handlers against a real PostgreSQL database: placement,
// acceptance, transfer, completion, and the concurrency guarantee that at most
// one driver's acceptance commits.
type OrderLifecycleIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
	notifier  *recordingNotifier

	createOrder    commands.CreateOrderCommandHandler
	acceptOrder    commands.AcceptOrderCommandHandler
	transferOrder  commands.TransferOrderCommandHandler
	completeOrder  commands.CompleteOrderCommandHandler
	registerDriver commands.RegisterDriverCommandHandler
}

func (suite *OrderLifecycleIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&driverrepo.DriverDTO{},
		&driverrepo.AvailabilityDTO{},
		&custodyrepo.RecordDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *OrderLifecycleIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, drivers, driver_time, driver_orders RESTART IDENTITY").Error
	suite.Require().NoError(err)

	suite.notifier = &recordingNotifier{}
	suite.createOrder = commands.NewCreateOrderCommandHandler(orderUoWFactoryAdapter{suite.factory})
	suite.acceptOrder = commands.NewAcceptOrderCommandHandler(uowFactoryAdapter{suite.factory}, suite.notifier)
	suite.transferOrder = commands.NewTransferOrderCommandHandler(uowFactoryAdapter{suite.factory}, suite.notifier)
	suite.completeOrder = commands.NewCompleteOrderCommandHandler(uowFactoryAdapter{suite.factory}, suite.notifier)
	suite.registerDriver = commands.NewRegisterDriverCommandHandler(driverUoWFactoryAdapter{suite.factory})
}

func (suite *OrderLifecycleIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderLifecycleIntegrationTestSuite) TestFullLifecycle_AcceptTransferComplete() {
	ctx := context.Background()

	orderID := suite.placeProduceOrder()
	firstDriverID := suite.registerTestDriver(70, "Somchai", "0890000001")
	secondDriverID := suite.registerTestDriver(71, "Wichai", "0890000002")

	// Accept by the first driver
	acceptCmd, err := commands.NewAcceptOrderCommand(orderID, firstDriverID, order.AgriculturalProduct)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.acceptOrder.Handle(ctx, acceptCmd))

	loaded := suite.loadOrder(orderID)
	suite.Equal(order.Accepted, loaded.Status())

	// Hand over to the second driver by phone
	transferCmd, err := commands.NewTransferOrderCommand(orderID, firstDriverID, "0890000002")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.transferOrder.Handle(ctx, transferCmd))

	loaded = suite.loadOrder(orderID)
	suite.Equal(order.Accepted, loaded.Status())
	suite.Require().NotNil(loaded.PreviousDriver())
	suite.Equal(firstDriverID, loaded.PreviousDriver().ID)

	// Complete by the second driver; produce orders end up Delivered
	completeCmd, err := commands.NewCompleteOrderCommand(orderID, secondDriverID, order.AgriculturalProduct)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.completeOrder.Handle(ctx, completeCmd))

	loaded = suite.loadOrder(orderID)
	suite.Equal(order.Delivered, loaded.Status())

	// The ledger carries the rewritten claim and the completion entry
	history, err := suite.factory.Create().CustodyRepository().History(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(custody.ActionAccepted, history[0].Action())
	suite.Equal(secondDriverID, history[0].DriverID())
	suite.Require().NotNil(history[0].Previous())
	suite.Equal(firstDriverID, history[0].Previous().ID)
	suite.Equal(custody.ActionCompleted, history[1].Action())
	suite.Equal(secondDriverID, history[1].DriverID())

	// Acceptance, transfer, and completion each notified someone
	suite.Len(suite.notifier.Messages(), 3)

	// Completing twice is a conflict
	err = suite.completeOrder.Handle(ctx, completeCmd)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderLifecycleIntegrationTestSuite) TestComplete_WrongDriver_Conflict() {
	ctx := context.Background()

	orderID := suite.placeProduceOrder()
	holderID := suite.registerTestDriver(70, "Somchai", "0890000001")
	strangerID := suite.registerTestDriver(71, "Wichai", "0890000002")

	acceptCmd, err := commands.NewAcceptOrderCommand(orderID, holderID, order.AgriculturalProduct)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.acceptOrder.Handle(ctx, acceptCmd))

	completeCmd, err := commands.NewCompleteOrderCommand(orderID, strangerID, order.AgriculturalProduct)
	suite.Require().NoError(err)

	err = suite.completeOrder.Handle(ctx, completeCmd)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)

	loaded := suite.loadOrder(orderID)
	suite.Equal(order.Accepted, loaded.Status())
}

func (suite *OrderLifecycleIntegrationTestSuite) TestAccept_ConcurrentDrivers_ExactlyOneWins() {
	ctx := context.Background()
	const driverCount = 8

	orderID := suite.placeProduceOrder()

	driverIDs := make([]int64, driverCount)
	for i := range driverIDs {
		driverIDs[i] = suite.registerTestDriver(int64(100+i), fmt.Sprintf("Driver %d", i), fmt.Sprintf("08900001%02d", i))
	}

	var wg sync.WaitGroup
	results := make([]error, driverCount)

	for i, driverID := range driverIDs {
		wg.Add(1)
		go func(slot int, id int64) {
			defer wg.Done()

			cmd, err := commands.NewAcceptOrderCommand(orderID, id, order.AgriculturalProduct)
			if err != nil {
				results[slot] = err
				return
			}

			handler := commands.NewAcceptOrderCommandHandler(uowFactoryAdapter{suite.factory}, suite.notifier)
			results[slot] = handler.Handle(ctx, cmd)
		}(i, driverID)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		default:
			suite.ErrorIs(err, errs.ErrConflict)
			conflicts++
		}
	}

	suite.Equal(1, successes, "Exactly one acceptance must commit")
	suite.Equal(driverCount-1, conflicts)

	loaded := suite.loadOrder(orderID)
	suite.Equal(order.Accepted, loaded.Status())

	var claimCount int64
	err := suite.db.Model(&custodyrepo.RecordDTO{}).
		Where("order_id = ? AND action = ?", orderID, custody.ActionAccepted.String()).
		Count(&claimCount).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), claimCount, "The ledger must hold a single active claim")
}

func (suite *OrderLifecycleIntegrationTestSuite) placeProduceOrder() int64 {
	cmd, err := commands.NewCreateOrderCommand(
		order.AgriculturalProduct,
		order.Party{ID: 55, Name: "Prasert", Phone: "0833333333"},
		nil,
		"Talat Sot market",
		false,
		"",
		[]commands.ItemInput{
			{ItemID: "mango-1kg", Name: "Nam Dok Mai mango 1kg", Price: 80, Quantity: 2, Category: "fruit"},
		},
	)
	suite.Require().NoError(err)

	id, err := suite.createOrder.Handle(context.Background(), cmd)
	suite.Require().NoError(err)
	return id
}

func (suite *OrderLifecycleIntegrationTestSuite) registerTestDriver(userID int64, name, phone string) int64 {
	cmd, err := commands.NewRegisterDriverCommand(userID, name, phone)
	suite.Require().NoError(err)

	id, err := suite.registerDriver.Handle(context.Background(), cmd)
	suite.Require().NoError(err)
	return id
}

func (suite *OrderLifecycleIntegrationTestSuite) loadOrder(id int64) *order.Order {
	loaded, err := suite.factory.Create().OrderRepository().Get(context.Background(), id)
	suite.Require().NoError(err)
	return loaded
}

func TestOrderLifecycleIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderLifecycleIntegrationTestSuite))
}
