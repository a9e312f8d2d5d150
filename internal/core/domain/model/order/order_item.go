package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was
	// not created through one of the constructor functions.
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")
)

// OrderItem is a line item entity owned by the Order aggregate: a product
// reference with a quantity, a unit price, and the subtotal declared by the
// caller. Arithmetic consistency between unit price, quantity, and subtotal is
// enforced at order validation time, not at construction.
//
// An item receives its identity and owning-order reference only when the order
// itself is initialized; until then both remain unset.
type OrderItem struct {
	// id is assigned sequentially (starting at 1) within the owning order
	id kernel.OrderItemID

	// orderID is a back-reference to the owning order, not ownership
	orderID kernel.OrderID

	// productID references the catalog product this line was priced from
	productID kernel.ProductID

	// quantity is the ordered amount (must be positive)
	quantity int

	// price is the unit price of the product
	price kernel.Money

	// subTotal is the declared line total, expected to equal price * quantity
	subTotal kernel.Money

	guard guard.ConstructorGuard
}

// NewOrderItem creates a line item from already-priced catalog input.
// The product reference must be valid and the quantity positive; the
// price/subtotal relation is deliberately left to order validation.
func NewOrderItem(
	productID kernel.ProductID,
	quantity int,
	price kernel.Money,
	subTotal kernel.Money,
) (*OrderItem, error) {
	item := &OrderItem{
		price:    price,
		subTotal: subTotal,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem reconstructs a line item from persistent storage, including
// the identity and owning-order reference assigned at initialization time.
func RestoreOrderItem(
	id kernel.OrderItemID,
	orderID kernel.OrderID,
	productID kernel.ProductID,
	quantity int,
	price kernel.Money,
	subTotal kernel.Money,
) (*OrderItem, error) {
	item, err := NewOrderItem(productID, quantity, price, subTotal)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	item.id = id
	item.orderID = orderID
	return item, nil
}

// Validate ensures the item was created through a constructor function.
func (i *OrderItem) Validate() error {
	if i == nil || i.guard.Validate(ErrOrderItemIsNotConstructed) != nil {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two line items by identity.
// Items without an assigned identity are never equal.
func (i *OrderItem) IsEqual(other *OrderItem) bool {
	return other != nil && i.id.Validate() == nil && i.id.IsEqual(other.id)
}

// ID returns the item's identity within its order (zero until initialized).
func (i *OrderItem) ID() kernel.OrderItemID { return i.id }

// OrderID returns the owning order's identity (zero until initialized).
func (i *OrderItem) OrderID() kernel.OrderID { return i.orderID }

// ProductID returns the catalog product reference.
func (i *OrderItem) ProductID() kernel.ProductID { return i.productID }

// Quantity returns the ordered amount.
func (i *OrderItem) Quantity() int { return i.quantity }

// Price returns the unit price.
func (i *OrderItem) Price() kernel.Money { return i.price }

// SubTotal returns the declared line total.
func (i *OrderItem) SubTotal() kernel.Money { return i.subTotal }

// IsPriceValid reports whether the line arithmetic is consistent:
// the unit price is greater than zero and price * quantity equals the
// declared subtotal exactly, at the fixed decimal scale.
func (i *OrderItem) IsPriceValid() bool {
	return i.price.IsGreaterThanZero() &&
		i.price.Multiply(i.quantity).IsEqual(i.subTotal)
}

// initialize assigns the owning-order reference and the item's own identity.
// Callable exactly once per item, and only from Order initialization.
func (i *OrderItem) initialize(orderID kernel.OrderID, id kernel.OrderItemID) error {
	if i.id.Validate() == nil {
		return errs.NewValueIsInvalidErrorWithCause("order item",
			fmt.Errorf("item %d is already initialized", i.id))
	}

	if err := errors.Join(orderID.Validate(), id.Validate()); err != nil {
		return err
	}

	i.orderID = orderID
	i.id = id
	return nil
}

func (i *OrderItem) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
