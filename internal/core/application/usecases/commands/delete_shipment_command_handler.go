package commands

import (
	"context"
	"time"

	"colis/internal/core/domain/model/access"
)

// DeleteShipmentCommandHandler hides a cancelled or completed shipment. Rows
// are never removed.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     access.Policy
}

func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory, policy access.Policy) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = authorizeOwnerOr(h.policy, aggregate, cmd.ActorID(), cmd.ActorRole(), access.ActionDeleteShipment, "delete shipment"); err != nil {
		return err
	}

	if err = aggregate.SoftDelete(time.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
