package commands

import (
	"context"
	"time"

	"colis/internal/core/domain/model/access"
)

// CancelShipmentCommandHandler cancels a Draft or Confirmed shipment and
// removes its parcels in the same transaction. The shipment header and its
// tracking history are kept for audit.
type CancelShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     access.Policy
}

func NewCancelShipmentCommandHandler(uowFactory ShipmentUoWFactory, policy access.Policy) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h *CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
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

	if err = authorizeOwnerOr(h.policy, aggregate, cmd.ActorID(), cmd.ActorRole(), access.ActionCancelAnyShipment, "cancel shipment"); err != nil {
		return err
	}

	if err = aggregate.Cancel(time.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = repo.DeleteParcels(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
