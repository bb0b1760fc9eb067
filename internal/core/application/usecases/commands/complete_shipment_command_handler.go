package commands

import (
	"context"
	"time"

	"colis/internal/core/domain/model/access"
)

// CompleteShipmentCommandHandler closes a paid, confirmed shipment. Only
// operational roles may complete.
type CompleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     access.Policy
}

func NewCompleteShipmentCommandHandler(uowFactory ShipmentUoWFactory, policy access.Policy) CompleteShipmentCommandHandler {
	return CompleteShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h *CompleteShipmentCommandHandler) Handle(ctx context.Context, cmd CompleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.ActorRole(), access.ActionCompleteShipment); err != nil {
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

	if err = aggregate.Complete(time.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
