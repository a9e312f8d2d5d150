package services_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

// catalog fixture: a pizza at 12.50 and a drink at 3.00.
func newTestRestaurant(t *testing.T, active bool) (*restaurant.Restaurant, *restaurant.Product, *restaurant.Product) {
	t.Helper()

	pizza, err := restaurant.NewProduct(kernel.NewProductID(), "Margherita", mustMoney(t, "12.50"))
	require.NoError(t, err)
	drink, err := restaurant.NewProduct(kernel.NewProductID(), "Lemonade", mustMoney(t, "3.00"))
	require.NoError(t, err)

	r, err := restaurant.NewRestaurant(kernel.NewRestaurantID(),
		[]*restaurant.Product{pizza, drink}, active)
	require.NoError(t, err)

	return r, pizza, drink
}

// order fixture matching the catalog: 2 pizzas and 1 drink, total 28.00.
func newOrderFor(t *testing.T, r *restaurant.Restaurant, pizza, drink *restaurant.Product) *order.Order {
	t.Helper()

	pizzaItem, err := order.NewOrderItem(pizza.ID(), 2, pizza.Price(), mustMoney(t, "25.00"))
	require.NoError(t, err)
	drinkItem, err := order.NewOrderItem(drink.ID(), 1, drink.Price(), mustMoney(t, "3.00"))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewCustomerID(), r.ID(), mustAddress(t),
		mustMoney(t, "28.00"), []*order.OrderItem{pizzaItem, drinkItem})
	require.NoError(t, err)

	return o
}

func TestOrderService_InitiateOrder(t *testing.T) {
	gen := kernel.NewRandomIDGenerator()

	t.Run("should initiate a valid order against an active restaurant", func(t *testing.T) {
		r, pizza, drink := newTestRestaurant(t, true)
		o := newOrderFor(t, r, pizza, drink)
		now := time.Now()

		event, err := services.NewOrderService().InitiateOrder(o, r, gen, now)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		require.NoError(t, o.ID().Validate())
		require.NoError(t, o.TrackingID().Validate())
		assert.Equal(t, o, event.Order())
		assert.Equal(t, now, event.CreatedAt())
	})

	t.Run("should fail for an inactive restaurant", func(t *testing.T) {
		r, pizza, drink := newTestRestaurant(t, false)
		o := newOrderFor(t, r, pizza, drink)

		_, err := services.NewOrderService().InitiateOrder(o, r, gen, time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not active")
		assert.Equal(t, order.Unknown, o.Status())
	})

	t.Run("should fail for a product the restaurant does not offer", func(t *testing.T) {
		r, pizza, _ := newTestRestaurant(t, true)
		foreignProduct := kernel.NewProductID()

		foreignItem, err := order.NewOrderItem(foreignProduct, 1, mustMoney(t, "5.00"), mustMoney(t, "5.00"))
		require.NoError(t, err)
		pizzaItem, err := order.NewOrderItem(pizza.ID(), 1, pizza.Price(), mustMoney(t, "12.50"))
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewCustomerID(), r.ID(), mustAddress(t),
			mustMoney(t, "17.50"), []*order.OrderItem{pizzaItem, foreignItem})
		require.NoError(t, err)

		_, err = services.NewOrderService().InitiateOrder(o, r, gen, time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), foreignProduct.String())
		assert.Contains(t, err.Error(), "not offered")
	})

	t.Run("should fail for a unit price that differs from the catalog", func(t *testing.T) {
		r, pizza, _ := newTestRestaurant(t, true)

		cheapItem, err := order.NewOrderItem(pizza.ID(), 1, mustMoney(t, "10.00"), mustMoney(t, "10.00"))
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewCustomerID(), r.ID(), mustAddress(t),
			mustMoney(t, "10.00"), []*order.OrderItem{cheapItem})
		require.NoError(t, err)

		_, err = services.NewOrderService().InitiateOrder(o, r, gen, time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match catalog price")
		assert.Contains(t, err.Error(), "12.50")
	})

	t.Run("should fail when order total does not match item subtotals", func(t *testing.T) {
		r, pizza, _ := newTestRestaurant(t, true)

		pizzaItem, err := order.NewOrderItem(pizza.ID(), 1, pizza.Price(), mustMoney(t, "12.50"))
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewCustomerID(), r.ID(), mustAddress(t),
			mustMoney(t, "20.00"), []*order.OrderItem{pizzaItem})
		require.NoError(t, err)

		_, err = services.NewOrderService().InitiateOrder(o, r, gen, time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "20.00")
		assert.Contains(t, err.Error(), "12.50")
	})

	t.Run("should fail for an already initiated order", func(t *testing.T) {
		r, pizza, drink := newTestRestaurant(t, true)
		o := newOrderFor(t, r, pizza, drink)

		_, err := services.NewOrderService().InitiateOrder(o, r, gen, time.Now())
		require.NoError(t, err)

		_, err = services.NewOrderService().InitiateOrder(o, r, gen, time.Now())

		require.Error(t, err)
	})
}

func TestOrderService_Lifecycle(t *testing.T) {
	gen := kernel.NewRandomIDGenerator()
	svc := services.NewOrderService()

	newInitiated := func(t *testing.T) *order.Order {
		t.Helper()
		r, pizza, drink := newTestRestaurant(t, true)
		o := newOrderFor(t, r, pizza, drink)
		_, err := svc.InitiateOrder(o, r, gen, time.Now())
		require.NoError(t, err)
		return o
	}

	t.Run("pay then approve", func(t *testing.T) {
		o := newInitiated(t)

		_, err := svc.PayOrder(o, time.Now())
		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.Status())

		_, err = svc.ApproveOrder(o, time.Now())
		require.NoError(t, err)
		assert.Equal(t, order.Approved, o.Status())
	})

	t.Run("pay then cancel payment then cancel", func(t *testing.T) {
		o := newInitiated(t)

		_, err := svc.PayOrder(o, time.Now())
		require.NoError(t, err)

		_, err = svc.CancelOrderPayment(o, []string{"restaurant rejected the order"}, time.Now())
		require.NoError(t, err)
		assert.Equal(t, order.Cancelling, o.Status())

		_, err = svc.CancelOrder(o, []string{"payment refunded"}, time.Now())
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, []string{"restaurant rejected the order", "payment refunded"},
			o.FailureMessages())
	})

	t.Run("cancel straight from pending", func(t *testing.T) {
		o := newInitiated(t)

		_, err := svc.CancelOrder(o, []string{"customer cancelled"}, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("approve before payment fails", func(t *testing.T) {
		o := newInitiated(t)

		_, err := svc.ApproveOrder(o, time.Now())

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})
}
