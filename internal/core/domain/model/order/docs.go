// Package order provides domain entities and business logic for purchase order
// management in the food ordering system. It implements the Order aggregate root
// with price reconciliation and lifecycle state transitions.
//
// The package includes:
//   - Order: The aggregate root owning line items, price, tracking id, and status
//   - OrderItem: A line item entity validated against its unit price and quantity
//   - Status: A state machine that enforces valid order status transitions
//   - Domain events: One immutable event per successful transition
//
// Key business rules:
//   - The declared total price must equal the sum of validated item subtotals
//   - Order status follows a defined workflow:
//     Pending -> Paid -> Approved, with Pending/Paid -> Cancelling -> Cancelled
//   - Orders are validated before initialization; initialization assigns
//     identity, tracking id, and sequential item identities exactly once
//   - Every transition returns the domain event to publish, with the creation
//     timestamp supplied by the caller
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
