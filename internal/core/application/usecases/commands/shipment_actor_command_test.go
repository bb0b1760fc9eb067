package commands_test

import (
	"testing"

	"colis/internal/core/application/usecases/commands"
	"colis/internal/core/domain/model/access"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelShipmentCommand(t *testing.T) {
	shipmentID, actorID := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewCancelShipmentCommand(shipmentID, actorID, access.RoleCustomer)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, shipmentID, cmd.ShipmentID())
	assert.Equal(t, actorID, cmd.ActorID())
	assert.Equal(t, access.RoleCustomer, cmd.ActorRole())
}

func TestShipmentActorCommands_Invalid(t *testing.T) {
	_, err := commands.NewCancelShipmentCommand(kernel.UUID{}, kernel.NewUUID(), access.RoleCustomer)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCompleteShipmentCommand(kernel.NewUUID(), kernel.NewUUID(), access.Role("COURIER"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewDeleteShipmentCommand(kernel.NewUUID(), kernel.UUID{}, access.RoleSuperAdmin)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestShipmentActorCommands_ZeroValueIsNotConstructed(t *testing.T) {
	require.ErrorIs(t, commands.CancelShipmentCommand{}.Validate(), commands.ErrCancelShipmentCommandIsNotConstructed)
	require.ErrorIs(t, commands.CompleteShipmentCommand{}.Validate(), commands.ErrCompleteShipmentCommandIsNotConstructed)
	require.ErrorIs(t, commands.DeleteShipmentCommand{}.Validate(), commands.ErrDeleteShipmentCommandIsNotConstructed)
}
