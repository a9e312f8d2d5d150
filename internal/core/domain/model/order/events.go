package order

import "time"

// OrderEvent is the shape shared by all order domain events: an immutable
// pairing of the order that changed with a creation timestamp. The timestamp
// is supplied by the caller, not self-generated, so event ordering stays under
// external control for testability. The event captures the order by reference;
// snapshot semantics are the publisher's responsibility.
type OrderEvent struct {
	order     *Order
	createdAt time.Time
}

// Order returns the order the event refers to.
func (e OrderEvent) Order() *Order { return e.order }

// CreatedAt returns the event's creation timestamp.
func (e OrderEvent) CreatedAt() time.Time { return e.createdAt }

// OrderCreatedEvent is emitted when an order is initialized into Pending.
type OrderCreatedEvent struct{ OrderEvent }

// NewOrderCreatedEvent pairs an initialized order with its creation timestamp.
func NewOrderCreatedEvent(o *Order, createdAt time.Time) OrderCreatedEvent {
	return OrderCreatedEvent{OrderEvent{order: o, createdAt: createdAt}}
}

// OrderPaidEvent is emitted when payment for an order is confirmed.
type OrderPaidEvent struct{ OrderEvent }

// NewOrderPaidEvent pairs a paid order with its creation timestamp.
func NewOrderPaidEvent(o *Order, createdAt time.Time) OrderPaidEvent {
	return OrderPaidEvent{OrderEvent{order: o, createdAt: createdAt}}
}

// OrderApprovedEvent is emitted when the restaurant approves a paid order.
type OrderApprovedEvent struct{ OrderEvent }

// NewOrderApprovedEvent pairs an approved order with its creation timestamp.
func NewOrderApprovedEvent(o *Order, createdAt time.Time) OrderApprovedEvent {
	return OrderApprovedEvent{OrderEvent{order: o, createdAt: createdAt}}
}

// OrderCancellingEvent is emitted when cancellation of an order is initiated.
type OrderCancellingEvent struct{ OrderEvent }

// NewOrderCancellingEvent pairs a cancelling order with its creation timestamp.
func NewOrderCancellingEvent(o *Order, createdAt time.Time) OrderCancellingEvent {
	return OrderCancellingEvent{OrderEvent{order: o, createdAt: createdAt}}
}

// OrderCancelledEvent is emitted when an order reaches the Cancelled state.
type OrderCancelledEvent struct{ OrderEvent }

// NewOrderCancelledEvent pairs a cancelled order with its creation timestamp.
func NewOrderCancelledEvent(o *Order, createdAt time.Time) OrderCancelledEvent {
	return OrderCancelledEvent{OrderEvent{order: o, createdAt: createdAt}}
}
