package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems(t *testing.T) []commands.CreateOrderItemData {
	t.Helper()
	return []commands.CreateOrderItemData{
		{
			ProductID: kernel.NewProductID(),
			Quantity:  2,
			Price:     mustMoney(t, "12.50"),
			SubTotal:  mustMoney(t, "25.00"),
		},
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		customerID := kernel.NewCustomerID()
		restaurantID := kernel.NewRestaurantID()

		cmd, err := commands.NewCreateOrderCommand(customerID, restaurantID, mustAddress(t),
			mustMoney(t, "25.00"), validItems(t))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.CustomerID().IsEqual(customerID))
		assert.True(t, cmd.RestaurantID().IsEqual(restaurantID))
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("should fail with invalid customer id", func(t *testing.T) {
		var invalidID kernel.CustomerID

		_, err := commands.NewCreateOrderCommand(invalidID, kernel.NewRestaurantID(),
			mustAddress(t), mustMoney(t, "25.00"), validItems(t))

		require.Error(t, err)
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewCustomerID(), kernel.NewRestaurantID(),
			mustAddress(t), mustMoney(t, "25.00"), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
	})

	t.Run("should fail with invalid product reference", func(t *testing.T) {
		items := validItems(t)
		items[0].ProductID = kernel.ProductID{}

		_, err := commands.NewCreateOrderCommand(kernel.NewCustomerID(), kernel.NewRestaurantID(),
			mustAddress(t), mustMoney(t, "25.00"), items)

		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrCreateOrderCommandIsNotConstructed, err)
	})
}
