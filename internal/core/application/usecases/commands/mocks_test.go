package commands_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*order.Order, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, message ports.OutboxMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkSent(ctx context.Context, eventID kernel.UUID, sentAt time.Time) error {
	args := m.Called(ctx, eventID, sentAt)
	return args.Error(0)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.RestaurantID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockTrackingInvalidator struct{ mock.Mock }

func (m *MockTrackingInvalidator) Invalidate(ctx context.Context, trackingID kernel.TrackingID) error {
	args := m.Called(ctx, trackingID)
	return args.Error(0)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// mustMoney parses an amount, failing the test on error.
func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func mustAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("1 Main St", "10001", "New York")
	require.NoError(t, err)
	return addr
}

// testCatalog is an active restaurant selling one product at 12.50.
func testCatalog(t *testing.T) (*restaurant.Restaurant, *restaurant.Product) {
	t.Helper()

	product, err := restaurant.NewProduct(kernel.NewProductID(), "Margherita", mustMoney(t, "12.50"))
	require.NoError(t, err)
	r, err := restaurant.NewRestaurant(kernel.NewRestaurantID(),
		[]*restaurant.Product{product}, true)
	require.NoError(t, err)

	return r, product
}

// pendingOrder builds an initialized order ready for lifecycle transitions.
func pendingOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewOrderItem(kernel.NewProductID(), 2, mustMoney(t, "12.50"), mustMoney(t, "25.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewCustomerID(), kernel.NewRestaurantID(), mustAddress(t),
		mustMoney(t, "25.00"), []*order.OrderItem{item})
	require.NoError(t, err)

	require.NoError(t, o.ValidateOrder())
	_, err = o.Initialize(kernel.NewRandomIDGenerator(), time.Now())
	require.NoError(t, err)
	return o
}

// paidOrder builds an order in Paid status.
func paidOrder(t *testing.T) *order.Order {
	t.Helper()

	o := pendingOrder(t)
	_, err := o.Pay(time.Now())
	require.NoError(t, err)
	return o
}
