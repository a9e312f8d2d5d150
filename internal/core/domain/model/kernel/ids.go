package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Typed identities give every entity kind its own identifier type, so an
// OrderID can never be passed where a CustomerID is expected. Each wraps the
// shared UUID value object and inherits its Validate, String, and Bytes
// behavior; equality is by underlying value.

// OrderID identifies an Order aggregate.
type OrderID struct{ UUID }

// NewOrderID generates a fresh random OrderID.
func NewOrderID() OrderID { return OrderID{NewUUID()} }

// OrderIDFrom wraps an existing UUID as an OrderID.
func OrderIDFrom(u UUID) OrderID { return OrderID{u} }

// OrderIDFromString parses an OrderID from its string representation.
func OrderIDFromString(s string) (OrderID, error) {
	u, err := UUIDFromString(s)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{u}, nil
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool { return id.UUID.IsEqual(other.UUID) }

// CustomerID identifies the customer who placed an order.
type CustomerID struct{ UUID }

// NewCustomerID generates a fresh random CustomerID.
func NewCustomerID() CustomerID { return CustomerID{NewUUID()} }

// CustomerIDFrom wraps an existing UUID as a CustomerID.
func CustomerIDFrom(u UUID) CustomerID { return CustomerID{u} }

// CustomerIDFromString parses a CustomerID from its string representation.
func CustomerIDFromString(s string) (CustomerID, error) {
	u, err := UUIDFromString(s)
	if err != nil {
		return CustomerID{}, err
	}
	return CustomerID{u}, nil
}

// IsEqual compares two customer identifiers by value.
func (id CustomerID) IsEqual(other CustomerID) bool { return id.UUID.IsEqual(other.UUID) }

// RestaurantID identifies the restaurant an order is placed against.
type RestaurantID struct{ UUID }

// NewRestaurantID generates a fresh random RestaurantID.
func NewRestaurantID() RestaurantID { return RestaurantID{NewUUID()} }

// RestaurantIDFrom wraps an existing UUID as a RestaurantID.
func RestaurantIDFrom(u UUID) RestaurantID { return RestaurantID{u} }

// RestaurantIDFromString parses a RestaurantID from its string representation.
func RestaurantIDFromString(s string) (RestaurantID, error) {
	u, err := UUIDFromString(s)
	if err != nil {
		return RestaurantID{}, err
	}
	return RestaurantID{u}, nil
}

// IsEqual compares two restaurant identifiers by value.
func (id RestaurantID) IsEqual(other RestaurantID) bool { return id.UUID.IsEqual(other.UUID) }

// ProductID identifies a catalog product referenced by an order item.
type ProductID struct{ UUID }

// NewProductID generates a fresh random ProductID.
func NewProductID() ProductID { return ProductID{NewUUID()} }

// ProductIDFrom wraps an existing UUID as a ProductID.
func ProductIDFrom(u UUID) ProductID { return ProductID{u} }

// ProductIDFromString parses a ProductID from its string representation.
func ProductIDFromString(s string) (ProductID, error) {
	u, err := UUIDFromString(s)
	if err != nil {
		return ProductID{}, err
	}
	return ProductID{u}, nil
}

// IsEqual compares two product identifiers by value.
func (id ProductID) IsEqual(other ProductID) bool { return id.UUID.IsEqual(other.UUID) }

// TrackingID is a secondary identifier used by external parties to query order
// status without exposing the order's primary identity.
type TrackingID struct{ UUID }

// NewTrackingID generates a fresh random TrackingID.
func NewTrackingID() TrackingID { return TrackingID{NewUUID()} }

// TrackingIDFrom wraps an existing UUID as a TrackingID.
func TrackingIDFrom(u UUID) TrackingID { return TrackingID{u} }

// TrackingIDFromString parses a TrackingID from its string representation.
func TrackingIDFromString(s string) (TrackingID, error) {
	u, err := UUIDFromString(s)
	if err != nil {
		return TrackingID{}, err
	}
	return TrackingID{u}, nil
}

// IsEqual compares two tracking identifiers by value.
func (id TrackingID) IsEqual(other TrackingID) bool { return id.UUID.IsEqual(other.UUID) }

// OrderItemID identifies a line item within a single order. Item identifiers
// are assigned sequentially starting at 1 when the order is initialized and are
// only unique within their owning order.
type OrderItemID int64

// Validate checks that the item identifier was assigned (positive).
func (id OrderItemID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order item id",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	return nil
}

// Int64 returns the raw identifier value for persistence mapping.
func (id OrderItemID) Int64() int64 { return int64(id) }

// IsEqual compares two order item identifiers by value.
func (id OrderItemID) IsEqual(other OrderItemID) bool { return id == other }

// IDGenerator is the capability for producing fresh order and tracking
// identities. It is injected into order initialization so tests can supply
// deterministic identifiers.
type IDGenerator interface {
	NewOrderID() OrderID
	NewTrackingID() TrackingID
}

// RandomIDGenerator is the production IDGenerator backed by random UUIDs.
type RandomIDGenerator struct{}

// NewRandomIDGenerator creates a RandomIDGenerator.
func NewRandomIDGenerator() RandomIDGenerator { return RandomIDGenerator{} }

// NewOrderID returns a fresh random order identifier.
func (RandomIDGenerator) NewOrderID() OrderID { return NewOrderID() }

// NewTrackingID returns a fresh random tracking identifier.
func (RandomIDGenerator) NewTrackingID() TrackingID { return NewTrackingID() }
