package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderItemsAreRequired is returned when an order is constructed without
	// any line items.
	ErrOrderItemsAreRequired = errors.New("order requires at least one item")
)

// Order represents a purchase order in the food ordering system. It is the
// aggregate root that owns the line items and is the sole entry point for
// mutating them.
//
// Order follows these invariants:
//   - The declared total price equals the sum of validated item subtotals
//   - Status transitions follow the defined lifecycle rules
//   - Identity, tracking id, and item identities are assigned exactly once
//   - Can only be created through the NewOrder constructor
//
// An order is created with identity and status unset. The intended call order
// is ValidateOrder first, then Initialize: validation checks the pre-init
// state, so running it after initialization always fails. Every later lifecycle
// operation assumes an initialized order.
type Order struct {
	// id is the unique identifier, unset until Initialize
	id kernel.OrderID

	// customerID references the customer who placed the order
	customerID kernel.CustomerID

	// restaurantID references the restaurant the order was placed against
	restaurantID kernel.RestaurantID

	// deliveryAddress is the destination for the order
	deliveryAddress kernel.Address

	// price is the declared total, reconciled against item subtotals
	price kernel.Money

	// items are the line items in menu (insertion) order
	items []*OrderItem

	// trackingID is the external query handle, unset until Initialize
	trackingID kernel.TrackingID

	// status is the current lifecycle state, Unknown until Initialize
	status Status

	// failureMessages accumulates human-readable cancellation reasons
	failureMessages []string

	guard guard.ConstructorGuard
}

// NewOrder creates an Order from already-validated external input: the
// customer, restaurant, delivery address, declared total price, and priced
// line items. Identity and status remain unset until Initialize; price
// reconciliation happens in ValidateOrder.
func NewOrder(
	customerID kernel.CustomerID,
	restaurantID kernel.RestaurantID,
	deliveryAddress kernel.Address,
	price kernel.Money,
	items []*OrderItem,
) (*Order, error) {
	order := &Order{
		price: price,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setDeliveryAddress(deliveryAddress),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an initialized order from persistent storage.
// Unlike NewOrder it requires identity, tracking id, and a valid status, and
// accepts the recorded failure messages.
func RestoreOrder(
	id kernel.OrderID,
	customerID kernel.CustomerID,
	restaurantID kernel.RestaurantID,
	deliveryAddress kernel.Address,
	price kernel.Money,
	items []*OrderItem,
	trackingID kernel.TrackingID,
	status Status,
	failureMessages []string,
) (*Order, error) {
	order, err := NewOrder(customerID, restaurantID, deliveryAddress, price, items)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		id.Validate(),
		trackingID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order.id = id
	order.trackingID = trackingID
	order.status = status
	order.failureMessages = slices.Clone(failureMessages)
	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// Call it when reconstructing orders from persistence to preserve integrity.
func (o *Order) Validate() error {
	if o == nil || o.guard.Validate(ErrOrderIsNotConstructed) != nil {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier (zero until Initialize).
func (o *Order) ID() kernel.OrderID { return o.id }

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.CustomerID { return o.customerID }

// RestaurantID returns the restaurant's identifier.
func (o *Order) RestaurantID() kernel.RestaurantID { return o.restaurantID }

// DeliveryAddress returns the delivery destination.
func (o *Order) DeliveryAddress() kernel.Address { return o.deliveryAddress }

// Price returns the declared total price.
func (o *Order) Price() kernel.Money { return o.price }

// Items returns the line items in menu order.
func (o *Order) Items() []*OrderItem { return o.items }

// TrackingID returns the external tracking identifier (zero until Initialize).
func (o *Order) TrackingID() kernel.TrackingID { return o.trackingID }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// FailureMessages returns the accumulated cancellation reasons in the order
// they were recorded. Empty unless a cancellation path was taken.
func (o *Order) FailureMessages() []string { return o.failureMessages }

// ValidateOrder runs the construction-time invariant checks in fixed order,
// failing fast on the first violation:
//
//  1. Initial-state check: identity and status must both be unset, so
//     validation must run before Initialize.
//  2. Total-price check: the declared price must be strictly greater than zero.
//  3. Items-price check: every item's unit price must be positive and
//     consistent with its subtotal, and the fold of all subtotals must equal
//     the declared price exactly (no tolerance).
//
// No state is mutated; on violation the returned error carries the offending
// amounts and, for item failures, the offending product.
func (o *Order) ValidateOrder() error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := o.validateInitialOrder(); err != nil {
		return err
	}

	if err := o.validateTotalPrice(); err != nil {
		return err
	}

	return o.validateItemsPrice()
}

// Initialize assigns the order its identity, tracking id, and Pending status,
// then numbers the items sequentially starting at 1 in list order. The
// identity generator is injected so tests can supply deterministic ids.
//
// Preconditions: identity and status are both unset. A second call always
// fails. Returns the Created event carrying the supplied timestamp.
func (o *Order) Initialize(gen kernel.IDGenerator, now time.Time) (OrderCreatedEvent, error) {
	if err := o.Validate(); err != nil {
		return OrderCreatedEvent{}, err
	}

	if o.status != Unknown || o.id.Validate() == nil {
		return OrderCreatedEvent{}, errs.NewValueIsInvalidErrorWithCause("order state",
			fmt.Errorf("cannot initialize order in %s status with identity already assigned", o.status))
	}

	o.id = gen.NewOrderID()
	o.trackingID = gen.NewTrackingID()
	o.status = Pending

	for i, item := range o.items {
		if err := item.initialize(o.id, kernel.OrderItemID(i+1)); err != nil {
			return OrderCreatedEvent{}, err
		}
	}

	return NewOrderCreatedEvent(o, now), nil
}

// Pay confirms payment for the order.
//
// Allowed only from Pending; moves the order to Paid and returns the Paid
// event. An illegal transition fails without mutating state.
func (o *Order) Pay(now time.Time) (OrderPaidEvent, error) {
	newStatus, err := o.status.Pay()
	if err != nil {
		return OrderPaidEvent{}, err
	}

	o.status = newStatus
	return NewOrderPaidEvent(o, now), nil
}

// Approve records the restaurant's acceptance of a paid order.
//
// Allowed only from Paid; moves the order to the terminal Approved state and
// returns the Approved event.
func (o *Order) Approve(now time.Time) (OrderApprovedEvent, error) {
	newStatus, err := o.status.Approve()
	if err != nil {
		return OrderApprovedEvent{}, err
	}

	o.status = newStatus
	return NewOrderApprovedEvent(o, now), nil
}

// BeginCancel initiates cancellation, recording the supplied failure messages.
//
// Allowed from Paid (restaurant rejection) or Pending (early cancellation);
// moves the order to Cancelling and returns the Cancelling event.
func (o *Order) BeginCancel(failureMessages []string, now time.Time) (OrderCancellingEvent, error) {
	newStatus, err := o.status.BeginCancel()
	if err != nil {
		return OrderCancellingEvent{}, err
	}

	o.status = newStatus
	o.appendFailureMessages(failureMessages)
	return NewOrderCancellingEvent(o, now), nil
}

// Cancel completes cancellation, recording the supplied failure messages.
//
// Allowed from Cancelling, or from Pending for an immediate cancel without the
// intermediate state; moves the order to the terminal Cancelled state and
// returns the Cancelled event. Fails from Approved.
func (o *Order) Cancel(failureMessages []string, now time.Time) (OrderCancelledEvent, error) {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return OrderCancelledEvent{}, err
	}

	o.status = newStatus
	o.appendFailureMessages(failureMessages)
	return NewOrderCancelledEvent(o, now), nil
}

// appendFailureMessages records new, non-empty reasons, skipping any message
// already present so repeated saga callbacks do not duplicate entries.
func (o *Order) appendFailureMessages(messages []string) {
	for _, msg := range messages {
		if msg == "" {
			continue
		}
		if !slices.Contains(o.failureMessages, msg) {
			o.failureMessages = append(o.failureMessages, msg)
		}
	}
}

func (o *Order) validateInitialOrder() error {
	if o.status != Unknown || o.id.Validate() == nil {
		return errs.NewValueIsInvalidErrorWithCause("order state",
			fmt.Errorf("order in %s status is not in correct state for initialization", o.status))
	}
	return nil
}

func (o *Order) validateTotalPrice() error {
	if !o.price.IsGreaterThanZero() {
		return errs.NewValueIsInvalidErrorWithCause("order price",
			fmt.Errorf("total price %s must be greater than zero", o.price))
	}
	return nil
}

func (o *Order) validateItemsPrice() error {
	itemsTotal := kernel.Zero
	for _, item := range o.items {
		if !item.IsPriceValid() {
			return errs.NewValueIsInvalidErrorWithCause("order item price",
				fmt.Errorf("item price %s is not valid for product %s",
					item.Price(), item.ProductID()))
		}
		itemsTotal = itemsTotal.Add(item.SubTotal())
	}

	if !o.price.IsEqual(itemsTotal) {
		return errs.NewValueIsInvalidErrorWithCause("order price",
			fmt.Errorf("total price %s is not equal to order items total %s",
				o.price, itemsTotal))
	}
	return nil
}

func (o *Order) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.RestaurantID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress kernel.Address) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}
