package commands_test

import (
	"testing"

	"ruralcart/internal/core/application/usecases/commands"
	"ruralcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransferOrderCommand_Success(t *testing.T) {
	cmd, err := commands.NewTransferOrderCommand(42, 7, "0877777777")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(42), cmd.OrderID())
	assert.Equal(t, int64(7), cmd.FromDriverID())
	assert.Equal(t, "0877777777", cmd.ToPhone())
}

func TestNewTransferOrderCommand_MissingPhone(t *testing.T) {
	_, err := commands.NewTransferOrderCommand(42, 7, "   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewTransferOrderCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewTransferOrderCommand(0, 7, "0877777777")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewTransferOrderCommand(42, 0, "0877777777")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTransferOrderCommand_ValidateNotConstructed(t *testing.T) {
	var cmd commands.TransferOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrTransferOrderCommandIsNotConstructed)
}
