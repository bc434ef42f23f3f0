package commands_test

import (
	"testing"

	"dragonpath/internal/core/application/usecases/commands"
	"dragonpath/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReleaseEscrowCommand(t *testing.T) {
	t.Run("should create command with valid order id", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewReleaseEscrowCommand(orderID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
	})

	t.Run("should fail with invalid order id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewReleaseEscrowCommand(invalidID)

		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.ReleaseEscrowCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrReleaseEscrowCommandIsNotConstructed)
	})
}
