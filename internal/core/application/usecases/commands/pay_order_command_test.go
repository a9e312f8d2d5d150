package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayOrderCommand(t *testing.T) {
	t.Run("should create command with valid order id", func(t *testing.T) {
		orderID := kernel.NewOrderID()

		cmd, err := commands.NewPayOrderCommand(orderID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
	})

	t.Run("should fail with invalid order id", func(t *testing.T) {
		var invalidID kernel.OrderID

		_, err := commands.NewPayOrderCommand(invalidID)

		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.PayOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrPayOrderCommandIsNotConstructed, err)
	})
}
