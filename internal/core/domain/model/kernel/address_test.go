package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should create valid address", func(t *testing.T) {
		addr, err := kernel.NewAddress("1 Main St", "10001", "New York")

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Equal(t, "1 Main St", addr.Street())
		assert.Equal(t, "10001", addr.PostalCode())
		assert.Equal(t, "New York", addr.City())
	})

	t.Run("should fail with empty street", func(t *testing.T) {
		_, err := kernel.NewAddress("", "10001", "New York")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "street")
	})

	t.Run("should collect all missing parts", func(t *testing.T) {
		_, err := kernel.NewAddress("", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "postal code")
		assert.Contains(t, err.Error(), "city")
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var addr kernel.Address

		err := addr.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, err)
	})
}

func TestAddress_IsEqual(t *testing.T) {
	a, _ := kernel.NewAddress("1 Main St", "10001", "New York")
	b, _ := kernel.NewAddress("1 Main St", "10001", "New York")
	c, _ := kernel.NewAddress("2 Oak Ave", "10001", "New York")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
