package services

import (
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"
)

// OrderService is a domain service responsible for initiating orders against
// the restaurant catalog and delegating lifecycle transitions to the order
// aggregate.
//
// Key responsibilities:
//   - Confirming the restaurant is active and every ordered product's unit
//     price matches the catalog before an order comes into existence
//   - Running the aggregate's invariant checks and initialization in the one
//     correct sequence
//   - Exposing the lifecycle transitions under their business names
//
// Business rules:
//   - An inactive restaurant cannot accept orders
//   - Every line item's unit price must equal the catalog price of its product
//   - Validation runs before initialization; a failed check produces no
//     identity and no event
type OrderService struct{}

// NewOrderService creates a new OrderService instance.
func NewOrderService() OrderService {
	return OrderService{}
}

// InitiateOrder validates a freshly constructed order against the restaurant
// catalog, then runs the aggregate's invariant checks and initialization.
//
// Parameters:
//   - o: The order to initiate (constructed, not yet initialized)
//   - r: The catalog snapshot of the ordered-from restaurant
//   - gen: Identity generator for the order and tracking ids
//   - now: Timestamp recorded on the resulting event
//
// Returns:
//   - order.OrderCreatedEvent: The Created event on success
//   - error: A validation error naming the offending restaurant, product, or
//     amount; the order is left untouched on failure
func (s OrderService) InitiateOrder(
	o *order.Order,
	r *restaurant.Restaurant,
	gen kernel.IDGenerator,
	now time.Time,
) (order.OrderCreatedEvent, error) {
	if err := s.validateRestaurant(r); err != nil {
		return order.OrderCreatedEvent{}, err
	}

	if err := s.validateProductPrices(o, r); err != nil {
		return order.OrderCreatedEvent{}, err
	}

	if err := o.ValidateOrder(); err != nil {
		return order.OrderCreatedEvent{}, err
	}

	return o.Initialize(gen, now)
}

// PayOrder confirms payment for the order, moving it from Pending to Paid.
func (s OrderService) PayOrder(o *order.Order, now time.Time) (order.OrderPaidEvent, error) {
	return o.Pay(now)
}

// ApproveOrder records the restaurant's acceptance of a paid order.
func (s OrderService) ApproveOrder(o *order.Order, now time.Time) (order.OrderApprovedEvent, error) {
	return o.Approve(now)
}

// CancelOrderPayment initiates cancellation of a paid order, recording the
// rejection reasons. The payment still has to be rolled back before the order
// is finally cancelled.
func (s OrderService) CancelOrderPayment(
	o *order.Order,
	failureMessages []string,
	now time.Time,
) (order.OrderCancellingEvent, error) {
	return o.BeginCancel(failureMessages, now)
}

// CancelOrder completes cancellation, recording the supplied reasons.
func (s OrderService) CancelOrder(
	o *order.Order,
	failureMessages []string,
	now time.Time,
) (order.OrderCancelledEvent, error) {
	return o.Cancel(failureMessages, now)
}

func (s OrderService) validateRestaurant(r *restaurant.Restaurant) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if !r.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause("restaurant",
			fmt.Errorf("restaurant %s is currently not active", r.ID()))
	}

	return nil
}

// validateProductPrices checks each line item's unit price against the
// catalog. An item referencing a product the restaurant does not sell, or
// priced differently from the catalog, fails initiation.
func (s OrderService) validateProductPrices(o *order.Order, r *restaurant.Restaurant) error {
	for _, item := range o.Items() {
		product, err := r.Product(item.ProductID())
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("order item",
				fmt.Errorf("product %s is not offered by restaurant %s", item.ProductID(), r.ID()))
		}

		if !item.Price().IsEqual(product.Price()) {
			return errs.NewValueIsInvalidErrorWithCause("order item price",
				fmt.Errorf("price %s of product %s does not match catalog price %s",
					item.Price(), item.ProductID(), product.Price()))
		}
	}

	return nil
}
