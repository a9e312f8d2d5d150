// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// failureMessageDelimiter separates failure messages in the persisted column.
// Messages never contain it; they are produced by this service, not free text.
const failureMessageDelimiter = ","

// OrderDTO represents the database structure for persisting order aggregates.
// The tracking id carries a unique index because customers query by it.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID    uuid.UUID  `gorm:"type:uuid;index"`
	TrackingID      uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	Address         AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Price           decimal.Decimal
	Status          string `gorm:"index"`
	FailureMessages string
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
type AddressDTO struct {
	Street     string
	PostalCode string
	City       string
}

// OrderItemDTO represents one order line item. Items are numbered per order,
// so the primary key is composite.
type OrderItemDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false"`
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Quantity  int
	Price     decimal.Decimal
	SubTotal  decimal.Decimal
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID().Int64(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			Price:     item.Price().Amount(),
			SubTotal:  item.SubTotal().Amount(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		TrackingID:   aggregate.TrackingID().Bytes(),
		Address: AddressDTO{
			Street:     aggregate.DeliveryAddress().Street(),
			PostalCode: aggregate.DeliveryAddress().PostalCode(),
			City:       aggregate.DeliveryAddress().City(),
		},
		Price:           aggregate.Price().Amount(),
		Status:          aggregate.Status().String(),
		FailureMessages: strings.Join(aggregate.FailureMessages(), failureMessageDelimiter),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := orderIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}

	customerUUID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantUUID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	trackingUUID, err := kernel.UUIDFromBytes(dto.TrackingID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.Street, dto.Address.PostalCode, dto.Address.City)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(id, itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, kernel.CustomerIDFrom(customerUUID),
		kernel.RestaurantIDFrom(restaurantUUID), address, price, items,
		kernel.TrackingIDFrom(trackingUUID), status,
		splitFailureMessages(dto.FailureMessages))
}

func itemToDomain(orderID kernel.OrderID, dto OrderItemDTO) (*order.OrderItem, error) {
	productUUID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	subTotal, err := kernel.NewMoney(dto.SubTotal)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderItem(kernel.OrderItemID(dto.ID), orderID,
		kernel.ProductIDFrom(productUUID), dto.Quantity, price, subTotal)
}

func orderIDFromRaw(raw uuid.UUID) (kernel.OrderID, error) {
	u, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.OrderID{}, err
	}
	return kernel.OrderIDFrom(u), nil
}

func splitFailureMessages(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, failureMessageDelimiter)
}
