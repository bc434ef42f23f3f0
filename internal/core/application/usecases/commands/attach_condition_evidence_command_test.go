package commands_test

import (
	"testing"

	"dragonpath/internal/core/application/usecases/commands"
	"dragonpath/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttachConditionEvidenceCommand(t *testing.T) {
	t.Run("should create command with photos only", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewAttachConditionEvidenceCommand(
			orderID, []string{"/docs/orders/x/seller-packing-1.jpg"}, "",
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Len(t, cmd.PhotoURLs(), 1)
		assert.Empty(t, cmd.VideoURL())
	})

	t.Run("should create command with video only", func(t *testing.T) {
		cmd, err := commands.NewAttachConditionEvidenceCommand(
			kernel.NewUUID(), nil, "/docs/orders/x/seller-packing.mp4",
		)

		require.NoError(t, err)
		assert.Equal(t, "/docs/orders/x/seller-packing.mp4", cmd.VideoURL())
	})

	t.Run("should fail without any evidence", func(t *testing.T) {
		_, err := commands.NewAttachConditionEvidenceCommand(kernel.NewUUID(), nil, "")

		require.ErrorIs(t, err, commands.ErrEvidenceIsRequired)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.AttachConditionEvidenceCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrAttachConditionEvidenceCommandIsNotConstructed)
	})
}

func TestNewConfirmLogisticsReceiptCommand(t *testing.T) {
	t.Run("should create command with notes", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewConfirmLogisticsReceiptCommand(orderID, "sealed properly")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, "sealed properly", cmd.Notes())
	})

	t.Run("notes are optional", func(t *testing.T) {
		cmd, err := commands.NewConfirmLogisticsReceiptCommand(kernel.NewUUID(), "")

		require.NoError(t, err)
		assert.Empty(t, cmd.Notes())
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.ConfirmLogisticsReceiptCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrConfirmLogisticsReceiptCommandIsNotConstructed)
	})
}
