package commands_test

import (
	"testing"

	"hatid/internal/core/application/usecases/commands"
	"hatid/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, centavos int64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoney(centavos)
	require.NoError(t, err)
	return money
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, kernel.ServiceTypeDelivery,
		mustMoney(t, 6500), mustMoney(t, 45000), "123 Katipunan Ave")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, kernel.ServiceTypeDelivery, cmd.ServiceType())
	assert.Equal(t, int64(45000), cmd.TotalAmount().Centavos())
	assert.Equal(t, "123 Katipunan Ave", cmd.Street())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, kernel.NewUUID(), kernel.ServiceTypeDelivery,
		mustMoney(t, 6500), mustMoney(t, 45000), "123 Katipunan Ave")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidServiceType(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.ServiceTypeUnknown,
		mustMoney(t, 6500), mustMoney(t, 45000), "123 Katipunan Ave")
	require.Error(t, err)
}

func TestNewCreateOrderCommand_EmptyStreet(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.ServiceTypeDelivery,
		mustMoney(t, 6500), mustMoney(t, 45000), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStreetIsRequired)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
