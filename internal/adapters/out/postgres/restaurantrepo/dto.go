// Package restaurantrepo provides read access to the restaurant catalog.
// The ordering context consumes catalog snapshots replicated into its own
// database; it never writes them, so the repository is read-only.
package restaurantrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantDTO represents the database structure of a restaurant catalog
// snapshot.
type RestaurantDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Active   bool
	Products []ProductDTO `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for restaurant snapshots.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// ProductDTO represents one catalog product of a restaurant.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Price        decimal.Decimal
}

// TableName specifies the database table name for catalog products.
func (ProductDTO) TableName() string {
	return "restaurant_products"
}

// toDomain converts a database DTO to a restaurant aggregate.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	restaurantUUID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	products := make([]*restaurant.Product, 0, len(dto.Products))
	for _, productDTO := range dto.Products {
		product, productErr := productToDomain(productDTO)
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, product)
	}

	return restaurant.NewRestaurant(kernel.RestaurantIDFrom(restaurantUUID), products, dto.Active)
}

func productToDomain(dto ProductDTO) (*restaurant.Product, error) {
	productUUID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return restaurant.NewProduct(kernel.ProductIDFrom(productUUID), dto.Name, price)
}
