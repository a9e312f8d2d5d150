package ports

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
)

// ErrRestaurantNotFound is returned by repositories when no restaurant matches
// the requested identifier.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository defines the read contract for the restaurant catalog.
// The ordering context only consumes catalog snapshots; it never writes them.
type RestaurantRepository interface {
	// Get retrieves a restaurant with its product catalog by identifier.
	// Returns ErrRestaurantNotFound when no such restaurant exists.
	Get(ctx context.Context, id kernel.RestaurantID) (*restaurant.Restaurant, error)
}
