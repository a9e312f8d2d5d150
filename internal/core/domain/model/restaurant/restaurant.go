package restaurant

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
	// not created through the constructor function.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

	// ErrProductNotFound is returned when a requested product is not part of
	// the restaurant's catalog.
	ErrProductNotFound = errors.New("product not found in restaurant catalog")

	// ErrRestaurantHasNoProducts is returned when a restaurant is constructed
	// with an empty catalog.
	ErrRestaurantHasNoProducts = errors.New("restaurant requires at least one product")
)

// Restaurant is the catalog aggregate consulted during order initiation.
// A restaurant that is not active cannot accept orders.
type Restaurant struct {
	id       kernel.RestaurantID
	products []*Product
	active   bool

	guard guard.ConstructorGuard
}

// NewRestaurant creates a restaurant from its catalog snapshot.
// The catalog must contain at least one valid product.
func NewRestaurant(id kernel.RestaurantID, products []*Product, active bool) (*Restaurant, error) {
	restaurant := &Restaurant{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setProducts(products),
	); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// Validate ensures the Restaurant instance was created via NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil || r.guard.Validate(ErrRestaurantIsNotConstructed) != nil {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// IsEqual compares two restaurants by identity.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's identity.
func (r *Restaurant) ID() kernel.RestaurantID { return r.id }

// Products returns the catalog snapshot.
func (r *Restaurant) Products() []*Product { return r.products }

// IsActive reports whether the restaurant currently accepts orders.
func (r *Restaurant) IsActive() bool { return r.active }

// Product looks up a catalog product by its identity.
func (r *Restaurant) Product(productID kernel.ProductID) (*Product, error) {
	for _, product := range r.products {
		if product.id.IsEqual(productID) {
			return product, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *Restaurant) setID(id kernel.RestaurantID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setProducts(products []*Product) error {
	if len(products) == 0 {
		return ErrRestaurantHasNoProducts
	}

	for _, product := range products {
		if err := product.Validate(); err != nil {
			return err
		}
	}

	r.products = products
	return nil
}
