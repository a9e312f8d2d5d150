package contracts

import (
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// Outbound event types.
const (
	EventOrderCreated    = "OrderCreated"
	EventOrderPaid       = "OrderPaid"
	EventOrderApproved   = "OrderApproved"
	EventOrderCancelling = "OrderCancelling"
	EventOrderCancelled  = "OrderCancelled"
)

// Inbound saga response event types.
const (
	EventPaymentCompleted = "PaymentCompleted"
	EventPaymentCancelled = "PaymentCancelled"
	EventPaymentFailed    = "PaymentFailed"
	EventApprovalOK       = "OrderApprovalOK"
	EventApprovalRejected = "OrderApprovalRejected"
)

// Topics. All events of a single order use the order id as partition key.
const (
	TopicPaymentRequest            = "order.payment.request"
	TopicRestaurantApprovalRequest = "order.approval.request"
	TopicOrderStatus               = "order.status"

	TopicPaymentResponse            = "order.payment.response"
	TopicRestaurantApprovalResponse = "order.approval.response"
)

// OrderItemPayload is one line item of an OrderCreated payload.
type OrderItemPayload struct {
	ItemID    int64  `json:"item_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	SubTotal  string `json:"sub_total"`
}

// OrderCreatedPayload carries the full order snapshot for downstream services.
type OrderCreatedPayload struct {
	OrderID      string             `json:"order_id"`
	TrackingID   string             `json:"tracking_id"`
	CustomerID   string             `json:"customer_id"`
	RestaurantID string             `json:"restaurant_id"`
	Price        string             `json:"price"`
	Items        []OrderItemPayload `json:"items"`
	Status       string             `json:"status"`
}

// OrderStatusPayload carries a lifecycle transition of an existing order.
// Used for Paid, Approved, Cancelling, and Cancelled events.
type OrderStatusPayload struct {
	OrderID         string   `json:"order_id"`
	CustomerID      string   `json:"customer_id"`
	RestaurantID    string   `json:"restaurant_id"`
	Price           string   `json:"price"`
	Status          string   `json:"status"`
	FailureMessages []string `json:"failure_messages,omitempty"`
}

// PaymentResponsePayload is the payment service's answer to a payment request.
type PaymentResponsePayload struct {
	OrderID         string   `json:"order_id"`
	PaymentID       string   `json:"payment_id"`
	Price           string   `json:"price"`
	FailureMessages []string `json:"failure_messages,omitempty"`
}

// ApprovalResponsePayload is the restaurant service's answer to an approval
// request.
type ApprovalResponsePayload struct {
	OrderID         string   `json:"order_id"`
	RestaurantID    string   `json:"restaurant_id"`
	FailureMessages []string `json:"failure_messages,omitempty"`
}

// NewOrderCreatedMessage builds the outbox record for a Created event.
// Published to the payment request topic to start the saga.
func NewOrderCreatedMessage(event order.OrderCreatedEvent) (ports.OutboxMessage, error) {
	o := event.Order()

	items := make([]OrderItemPayload, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemPayload{
			ItemID:    item.ID().Int64(),
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
			Price:     item.Price().String(),
			SubTotal:  item.SubTotal().String(),
		})
	}

	payload := OrderCreatedPayload{
		OrderID:      o.ID().String(),
		TrackingID:   o.TrackingID().String(),
		CustomerID:   o.CustomerID().String(),
		RestaurantID: o.RestaurantID().String(),
		Price:        o.Price().String(),
		Items:        items,
		Status:       o.Status().String(),
	}

	return wrap(EventOrderCreated, TopicPaymentRequest, event.CreatedAt(), o, payload)
}

// NewOrderPaidMessage builds the outbox record for a Paid event.
// Published to the restaurant approval request topic.
func NewOrderPaidMessage(event order.OrderPaidEvent) (ports.OutboxMessage, error) {
	return statusMessage(EventOrderPaid, TopicRestaurantApprovalRequest, event.OrderEvent)
}

// NewOrderApprovedMessage builds the outbox record for an Approved event.
func NewOrderApprovedMessage(event order.OrderApprovedEvent) (ports.OutboxMessage, error) {
	return statusMessage(EventOrderApproved, TopicOrderStatus, event.OrderEvent)
}

// NewOrderCancellingMessage builds the outbox record for a Cancelling event.
// Published to the payment request topic so the payment can be rolled back.
func NewOrderCancellingMessage(event order.OrderCancellingEvent) (ports.OutboxMessage, error) {
	return statusMessage(EventOrderCancelling, TopicPaymentRequest, event.OrderEvent)
}

// NewOrderCancelledMessage builds the outbox record for a Cancelled event.
func NewOrderCancelledMessage(event order.OrderCancelledEvent) (ports.OutboxMessage, error) {
	return statusMessage(EventOrderCancelled, TopicOrderStatus, event.OrderEvent)
}

func statusMessage(eventType, topic string, event order.OrderEvent) (ports.OutboxMessage, error) {
	o := event.Order()
	payload := OrderStatusPayload{
		OrderID:         o.ID().String(),
		CustomerID:      o.CustomerID().String(),
		RestaurantID:    o.RestaurantID().String(),
		Price:           o.Price().String(),
		Status:          o.Status().String(),
		FailureMessages: o.FailureMessages(),
	}
	return wrap(eventType, topic, event.CreatedAt(), o, payload)
}

func wrap(eventType, topic string, occurredAt time.Time, o *order.Order, payload any) (ports.OutboxMessage, error) {
	envelope, eventID, err := NewEnvelope(eventType, occurredAt, payload)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	return ToOutboxMessage(envelope, eventID, topic, o.ID())
}
