// Package kernel provides core domain primitives for the ordering system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Typed identities (OrderID, CustomerID, RestaurantID, ProductID, TrackingID, OrderItemID)
//   - Money: A fixed-scale decimal value object backing all price arithmetic
//   - Address: A delivery address value object
//   - IDGenerator: An injectable capability for producing fresh identities
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and thread-safe,
// making them suitable for concurrent use.
package kernel
