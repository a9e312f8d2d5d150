// Package ports defines repository interfaces for the ordering domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// ErrOrderNotFound is returned by repositories when no order matches the
// requested identifier.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the persistence contract for order aggregates.
// The aggregate is stored and loaded as a whole, line items included.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be initialized and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ErrOrderNotFound when no such order exists.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetByTrackingID retrieves an order aggregate by the tracking identifier
	// handed out at creation. Returns ErrOrderNotFound when no such order exists.
	GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*order.Order, error)
}
