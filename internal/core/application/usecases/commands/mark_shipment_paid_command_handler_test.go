package commands_test

import (
	"testing"

	"colis/internal/core/application/usecases/commands"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/shipment"
	"colis/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkShipmentPaidCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := newConfirmedShipment(t, kernel.NewUUID())
	cmd, err := commands.NewMarkShipmentPaidCommand(target.ID())
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		repo.On("Update", ctx, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewMarkShipmentPaidCommandHandler(newFactory[commands.ShipmentUoW](uow))
	paid, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, paid.IsPaid())
	assert.Equal(t, shipment.Confirmed, paid.Status())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestMarkShipmentPaidCommandHandler_Handle_AlreadyPaidIsNoOp(t *testing.T) {
	ctx := t.Context()
	target := newPaidShipment(t, kernel.NewUUID())
	cmd, err := commands.NewMarkShipmentPaidCommand(target.ID())
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewMarkShipmentPaidCommandHandler(newFactory[commands.ShipmentUoW](uow))
	paid, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, paid.IsPaid())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMarkShipmentPaidCommandHandler_Handle_Cancelled(t *testing.T) {
	ctx := t.Context()
	target := newConfirmedShipment(t, kernel.NewUUID())
	require.NoError(t, target.Cancel(target.UpdatedAt()))
	cmd, err := commands.NewMarkShipmentPaidCommand(target.ID())
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewMarkShipmentPaidCommandHandler(newFactory[commands.ShipmentUoW](uow))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	require.ErrorIs(t, err, shipment.ErrNotConfirmed)
}

func TestMarkShipmentPaidCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewMarkShipmentPaidCommand(id)
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("shipment", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewMarkShipmentPaidCommandHandler(newFactory[commands.ShipmentUoW](uow))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
