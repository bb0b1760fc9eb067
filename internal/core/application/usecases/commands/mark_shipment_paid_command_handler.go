package commands

import (
	"context"
	"time"

	"colis/internal/core/domain/model/shipment"
)

// MarkShipmentPaidCommandHandler applies a payment outcome. Webhooks may be
// delivered more than once: a repeated payment returns the current state
// without writing anything.
type MarkShipmentPaidCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

func NewMarkShipmentPaidCommandHandler(uowFactory ShipmentUoWFactory) MarkShipmentPaidCommandHandler {
	return MarkShipmentPaidCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *MarkShipmentPaidCommandHandler) Handle(ctx context.Context, cmd MarkShipmentPaidCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	changed, err := aggregate.MarkPaid(time.Now())
	if err != nil {
		return nil, err
	}
	if !changed {
		return aggregate, nil
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
