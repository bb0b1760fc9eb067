package commands_test

import (
	"strings"
	"testing"

	"colis/internal/core/application/usecases/commands"
	"colis/internal/core/domain/model/access"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/tariff"
	"colis/internal/core/domain/model/tracking"
	"colis/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAppendTrackingEventCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := newPaidShipment(t, kernel.NewUUID())

	cmd, err := commands.NewAppendTrackingEventCommand(target.ID(), "sent", "Brussels hub", "left the hub", access.RoleAgencyAdmin)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	events := new(MockTrackingRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("TrackingRepository").Return(events).Once(),
		events.On("Append", ctx, mock.AnythingOfType("*tracking.Event")).
			Run(func(args mock.Arguments) { args.Get(1).(*tracking.Event).AssignSeq(7) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAppendTrackingEventCommandHandler(newFactory[commands.TrackingUoW](uow), access.DefaultPolicy())
	event, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, tracking.Sent, event.Status())
	assert.Equal(t, int64(7), event.Seq())
	assert.Equal(t, target.ID(), event.ShipmentID())
	assert.Equal(t, access.RoleAgencyAdmin, event.CreatedByRole())
	uow.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestAppendTrackingEventCommandHandler_Handle_RoleNotAllowed(t *testing.T) {
	cmd, err := commands.NewAppendTrackingEventCommand(kernel.NewUUID(), "SENT", "", "", access.RoleCustomer)
	require.NoError(t, err)

	factory := new(MockUoWFactory[commands.TrackingUoW])
	handler := commands.NewAppendTrackingEventCommandHandler(factory, access.DefaultPolicy())
	_, err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, access.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestAppendTrackingEventCommandHandler_Handle_ConfiguredRoles(t *testing.T) {
	cmd, err := commands.NewAppendTrackingEventCommand(kernel.NewUUID(), "SENT", "", "", access.RoleAccountant)
	require.NoError(t, err)

	policy := access.DefaultPolicy().WithRoles(access.ActionAppendTrackingEvent, []access.Role{access.RoleSuperAdmin})
	factory := new(MockUoWFactory[commands.TrackingUoW])
	handler := commands.NewAppendTrackingEventCommandHandler(factory, policy)
	_, err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestAppendTrackingEventCommandHandler_Handle_DeletedShipment(t *testing.T) {
	target := newConfirmedShipment(t, kernel.NewUUID())
	require.NoError(t, target.Cancel(target.UpdatedAt()))
	require.NoError(t, target.SoftDelete(target.UpdatedAt()))

	cmd, err := commands.NewAppendTrackingEventCommand(target.ID(), "RETURNED", "", "", access.RoleSuperAdmin)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	uow := new(MockUoW)
	expectShipmentLoad(uow, shipments, target)

	handler := commands.NewAppendTrackingEventCommandHandler(newFactory[commands.TrackingUoW](uow), access.DefaultPolicy())
	_, err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, commands.ErrShipmentDeleted)
	uow.AssertNotCalled(t, "TrackingRepository")
}

func TestAppendTrackingEventCommandHandler_Handle_LocationTooLong(t *testing.T) {
	target := newPaidShipment(t, kernel.NewUUID())
	cmd, err := commands.NewAppendTrackingEventCommand(target.ID(), "SENT", strings.Repeat("x", 256), "", access.RoleSuperAdmin)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	uow := new(MockUoW)
	expectShipmentLoad(uow, shipments, target)

	handler := commands.NewAppendTrackingEventCommandHandler(newFactory[commands.TrackingUoW](uow), access.DefaultPolicy())
	_, err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewAppendTrackingEventCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewAppendTrackingEventCommand(kernel.NewUUID(), "LOST", "", "", access.RoleSuperAdmin)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateTariffCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateTariffCommand(dec("3"), dec("0.002"), dec("4"), dec("1.5"), access.RoleSuperAdmin)
	require.NoError(t, err)

	tariffs := new(MockTariffRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TariffRepository").Return(tariffs).Once(),
		tariffs.On("Save", ctx, mock.MatchedBy(func(saved tariff.Tariff) bool {
			return saved.WeightRate().Equal(dec("3")) && saved.FixedRate().Equal(dec("1.5"))
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateTariffCommandHandler(newFactory[commands.TariffUoW](uow), access.DefaultPolicy())

	require.NoError(t, handler.Handle(ctx, cmd))
	uow.AssertExpectations(t)
	tariffs.AssertExpectations(t)
}

func TestUpdateTariffCommandHandler_Handle_Forbidden(t *testing.T) {
	cmd, err := commands.NewUpdateTariffCommand(dec("3"), dec("0.002"), dec("4"), dec("1.5"), access.RoleAgencyAdmin)
	require.NoError(t, err)

	factory := new(MockUoWFactory[commands.TariffUoW])
	handler := commands.NewUpdateTariffCommandHandler(factory, access.DefaultPolicy())

	require.ErrorIs(t, handler.Handle(t.Context(), cmd), errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestNewUpdateTariffCommand_NonPositiveRate(t *testing.T) {
	_, err := commands.NewUpdateTariffCommand(dec("0"), dec("0.002"), dec("4"), dec("1.5"), access.RoleSuperAdmin)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
