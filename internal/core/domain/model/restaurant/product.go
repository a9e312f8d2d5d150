package restaurant

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the constructor function.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is a catalog entry: a product identity with its confirmed name and
// unit price. Instances are immutable once constructed.
type Product struct {
	id    kernel.ProductID
	name  string
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewProduct creates a catalog product with a confirmed name and unit price.
func NewProduct(id kernel.ProductID, name string, price kernel.Money) (*Product, error) {
	product := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product instance was created via NewProduct.
func (p *Product) Validate() error {
	if p == nil || p.guard.Validate(ErrProductIsNotConstructed) != nil {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's catalog identity.
func (p *Product) ID() kernel.ProductID { return p.id }

// Name returns the confirmed product name.
func (p *Product) Name() string { return p.name }

// Price returns the confirmed unit price.
func (p *Product) Price() kernel.Money { return p.price }

func (p *Product) setID(id kernel.ProductID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if !price.IsGreaterThanZero() {
		return errs.NewValueIsInvalidError("price")
	}
	p.price = price
	return nil
}
