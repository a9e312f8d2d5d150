package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubIDGenerator returns fixed identities so initialization is deterministic.
type stubIDGenerator struct {
	orderID    kernel.OrderID
	trackingID kernel.TrackingID
}

func (g stubIDGenerator) NewOrderID() kernel.OrderID       { return g.orderID }
func (g stubIDGenerator) NewTrackingID() kernel.TrackingID { return g.trackingID }

func newStubIDGenerator() stubIDGenerator {
	return stubIDGenerator{
		orderID:    kernel.NewOrderID(),
		trackingID: kernel.NewTrackingID(),
	}
}

func mustAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("1 Main St", "10001", "New York")
	require.NoError(t, err)
	return addr
}

// newTestItems builds the reference item set:
// (10.00 x 2 = 20.00) and (5.00 x 1 = 5.00), summing to 25.00.
func newTestItems(t *testing.T) []*order.OrderItem {
	t.Helper()

	first, err := order.NewOrderItem(kernel.NewProductID(), 2, mustMoney(t, "10.00"), mustMoney(t, "20.00"))
	require.NoError(t, err)
	second, err := order.NewOrderItem(kernel.NewProductID(), 1, mustMoney(t, "5.00"), mustMoney(t, "5.00"))
	require.NoError(t, err)

	return []*order.OrderItem{first, second}
}

func newTestOrder(t *testing.T, price string) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewCustomerID(),
		kernel.NewRestaurantID(),
		mustAddress(t),
		mustMoney(t, price),
		newTestItems(t),
	)
	require.NoError(t, err)
	return o
}

// newInitializedOrder validates and initializes a well-formed order.
func newInitializedOrder(t *testing.T) *order.Order {
	t.Helper()

	o := newTestOrder(t, "25.00")
	require.NoError(t, o.ValidateOrder())
	_, err := o.Initialize(newStubIDGenerator(), time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order with identity and status unset", func(t *testing.T) {
		o := newTestOrder(t, "25.00")

		require.NoError(t, o.Validate())
		require.Error(t, o.ID().Validate())
		require.Error(t, o.TrackingID().Validate())
		assert.Equal(t, order.Unknown, o.Status())
		assert.Empty(t, o.FailureMessages())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should fail with invalid customer id", func(t *testing.T) {
		var invalidID kernel.CustomerID

		_, err := order.NewOrder(invalidID, kernel.NewRestaurantID(), mustAddress(t),
			mustMoney(t, "25.00"), newTestItems(t))

		require.Error(t, err)
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewCustomerID(), kernel.NewRestaurantID(), mustAddress(t),
			mustMoney(t, "25.00"), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderItemsAreRequired)
	})

	t.Run("should fail with zero value address", func(t *testing.T) {
		var invalidAddress kernel.Address

		_, err := order.NewOrder(kernel.NewCustomerID(), kernel.NewRestaurantID(), invalidAddress,
			mustMoney(t, "25.00"), newTestItems(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "address must be created")
	})
}

func TestOrder_ValidateOrder(t *testing.T) {
	t.Run("should pass when item subtotals sum to declared price", func(t *testing.T) {
		o := newTestOrder(t, "25.00")

		require.NoError(t, o.ValidateOrder())
		// No mutation on the success path either.
		assert.Equal(t, order.Unknown, o.Status())
	})

	t.Run("should fail with price mismatch naming both amounts", func(t *testing.T) {
		o := newTestOrder(t, "30.00")

		err := o.ValidateOrder()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "30.00")
		assert.Contains(t, err.Error(), "25.00")
		// Failed validation must not mutate the order.
		assert.Equal(t, order.Unknown, o.Status())
		require.Error(t, o.ID().Validate())
	})

	t.Run("should fail when declared price is zero", func(t *testing.T) {
		items := []*order.OrderItem{}
		item, err := order.NewOrderItem(kernel.NewProductID(), 1, kernel.Zero, kernel.Zero)
		require.NoError(t, err)
		items = append(items, item)

		o, err := order.NewOrder(kernel.NewCustomerID(), kernel.NewRestaurantID(), mustAddress(t),
			kernel.Zero, items)
		require.NoError(t, err)

		err = o.ValidateOrder()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be greater than zero")
	})

	t.Run("should fail naming the product of an inconsistent item", func(t *testing.T) {
		badProduct := kernel.NewProductID()
		bad, err := order.NewOrderItem(badProduct, 2, mustMoney(t, "10.00"), mustMoney(t, "25.00"))
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewCustomerID(), kernel.NewRestaurantID(), mustAddress(t),
			mustMoney(t, "25.00"), []*order.OrderItem{bad})
		require.NoError(t, err)

		err = o.ValidateOrder()

		require.Error(t, err)
		assert.Contains(t, err.Error(), badProduct.String())
	})

	t.Run("should fail after initialization", func(t *testing.T) {
		o := newInitializedOrder(t)

		err := o.ValidateOrder()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not in correct state for initialization")
	})
}

func TestOrder_Initialize(t *testing.T) {
	t.Run("should assign identity, tracking id, Pending status and item ids", func(t *testing.T) {
		o := newTestOrder(t, "25.00")
		gen := newStubIDGenerator()
		now := time.Now()

		event, err := o.Initialize(gen, now)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(gen.orderID))
		assert.True(t, o.TrackingID().IsEqual(gen.trackingID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, o, event.Order())
		assert.Equal(t, now, event.CreatedAt())

		for i, item := range o.Items() {
			assert.Equal(t, kernel.OrderItemID(i+1), item.ID())
			assert.True(t, item.OrderID().IsEqual(o.ID()))
		}
	})

	t.Run("should always fail on a second call", func(t *testing.T) {
		o := newTestOrder(t, "25.00")
		gen := newStubIDGenerator()

		_, err := o.Initialize(gen, time.Now())
		require.NoError(t, err)

		_, err = o.Initialize(gen, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Pay(t *testing.T) {
	t.Run("should move Pending order to Paid and emit event", func(t *testing.T) {
		o := newInitializedOrder(t)
		now := time.Now()

		event, err := o.Pay(now)

		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, o, event.Order())
		assert.Equal(t, now, event.CreatedAt())
	})

	t.Run("should fail from Paid", func(t *testing.T) {
		o := newInitializedOrder(t)
		_, err := o.Pay(time.Now())
		require.NoError(t, err)

		_, err = o.Pay(time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot pay order in Paid status")
		assert.Equal(t, order.Paid, o.Status())
	})
}

func TestOrder_Approve(t *testing.T) {
	t.Run("should move Paid order to Approved", func(t *testing.T) {
		o := newInitializedOrder(t)
		_, err := o.Pay(time.Now())
		require.NoError(t, err)

		event, err := o.Approve(time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Approved, o.Status())
		assert.Equal(t, o, event.Order())
	})

	t.Run("should fail from Pending", func(t *testing.T) {
		o := newInitializedOrder(t)

		_, err := o.Approve(time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot approve order in Pending status")
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_CancellationPath(t *testing.T) {
	t.Run("BeginCancel from Paid records failure messages", func(t *testing.T) {
		o := newInitializedOrder(t)
		_, err := o.Pay(time.Now())
		require.NoError(t, err)

		event, err := o.BeginCancel([]string{"reason A"}, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Cancelling, o.Status())
		assert.Equal(t, []string{"reason A"}, o.FailureMessages())
		assert.Equal(t, o, event.Order())
	})

	t.Run("Cancel appends messages without duplication", func(t *testing.T) {
		o := newInitializedOrder(t)
		_, err := o.Pay(time.Now())
		require.NoError(t, err)
		_, err = o.BeginCancel([]string{"reason A"}, time.Now())
		require.NoError(t, err)

		_, err = o.Cancel([]string{"reason B", "reason A", ""}, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, []string{"reason A", "reason B"}, o.FailureMessages())
	})

	t.Run("Cancel is allowed straight from Pending", func(t *testing.T) {
		o := newInitializedOrder(t)

		_, err := o.Cancel([]string{"customer changed their mind"}, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("BeginCancel fails from Approved", func(t *testing.T) {
		o := newInitializedOrder(t)
		_, err := o.Pay(time.Now())
		require.NoError(t, err)
		_, err = o.Approve(time.Now())
		require.NoError(t, err)

		_, err = o.BeginCancel([]string{"too late"}, time.Now())

		require.Error(t, err)
		assert.Equal(t, order.Approved, o.Status())
		assert.Empty(t, o.FailureMessages())
	})

	t.Run("Cancel fails from Approved", func(t *testing.T) {
		o := newInitializedOrder(t)
		_, err := o.Pay(time.Now())
		require.NoError(t, err)
		_, err = o.Approve(time.Now())
		require.NoError(t, err)

		_, err = o.Cancel([]string{"too late"}, time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot cancel order in Approved status")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		require.Error(t, o.Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore initialized order from persisted state", func(t *testing.T) {
		src := newInitializedOrder(t)

		items := make([]*order.OrderItem, 0, len(src.Items()))
		for _, item := range src.Items() {
			restored, err := order.RestoreOrderItem(item.ID(), item.OrderID(), item.ProductID(),
				item.Quantity(), item.Price(), item.SubTotal())
			require.NoError(t, err)
			items = append(items, restored)
		}

		restored, err := order.RestoreOrder(src.ID(), src.CustomerID(), src.RestaurantID(),
			src.DeliveryAddress(), src.Price(), items, src.TrackingID(), src.Status(),
			[]string{"reason A"})

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(src))
		assert.Equal(t, src.Status(), restored.Status())
		assert.Equal(t, []string{"reason A"}, restored.FailureMessages())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		src := newInitializedOrder(t)

		_, err := order.RestoreOrder(src.ID(), src.CustomerID(), src.RestaurantID(),
			src.DeliveryAddress(), src.Price(), newTestItems(t), src.TrackingID(),
			order.Unknown, nil)

		require.Error(t, err)
	})
}
