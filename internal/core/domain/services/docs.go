// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the ordering system. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderService: A domain service coordinating order initiation against the
//     restaurant catalog and delegating lifecycle transitions to the aggregate
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
