package kernel

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable delivery address value object.
// The zero value is invalid and fails validation; use NewAddress.
type Address struct { //nolint:recvcheck //using for validation
	street     string
	postalCode string
	city       string

	guard guard.ConstructorGuard
}

// NewAddress creates a delivery address. All three parts are required.
func NewAddress(street, postalCode, city string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setPostalCode(postalCode),
		address.setCity(city),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Street returns the street part of the address.
func (a Address) Street() string { return a.street }

// PostalCode returns the postal code part of the address.
func (a Address) PostalCode() string { return a.postalCode }

// City returns the city part of the address.
func (a Address) City() string { return a.city }

// IsEqual compares two addresses by value.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.postalCode == other.postalCode && a.city == other.city
}

// Validate ensures the address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postal code")
	}
	a.postalCode = postalCode
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}
