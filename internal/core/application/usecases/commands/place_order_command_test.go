package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	items := []commands.PlaceOrderItem{{ItemID: kernel.NewUUID(), Quantity: 2}}

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), "+919700000001", kernel.NewUUID(),
			order.PaymentModeUPI, items,
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("should reject empty items", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), "+919700000001", kernel.NewUUID(),
			order.PaymentModeUPI, nil,
		)

		require.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), "+919700000001", kernel.NewUUID(),
			order.PaymentModeUPI,
			[]commands.PlaceOrderItem{{ItemID: kernel.NewUUID(), Quantity: 0}},
		)

		require.Error(t, err)
	})

	t.Run("should reject unknown payment mode", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), "+919700000001", kernel.NewUUID(),
			order.PaymentModeUnknown, items,
		)

		require.Error(t, err)
	})

	t.Run("should reject empty customer phone", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), "", kernel.NewUUID(),
			order.PaymentModeCash, items,
		)

		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}
