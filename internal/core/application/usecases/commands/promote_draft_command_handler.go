package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/shipment"
	"colis/internal/core/domain/services"
	"colis/internal/core/ports"
	"colis/internal/pkg/errs"
)

// PromoteDraftCommandHandler materializes a draft into a confirmed shipment.
//
// The quote is re-read from the verified token, never from client fields.
// At-most-once promotion is enforced by the store: the quote id is a unique
// key of the shipments table, so of two concurrent promotions of one draft
// exactly one commits and the other gets ErrDuplicatePromotion.
type PromoteDraftCommandHandler struct {
	uowFactory PromotionUoWFactory
	codec      ports.DraftTokenCodec
	generator  services.TrackingNumberGenerator
}

func NewPromoteDraftCommandHandler(
	uowFactory PromotionUoWFactory,
	codec ports.DraftTokenCodec,
	generator services.TrackingNumberGenerator,
) PromoteDraftCommandHandler {
	return PromoteDraftCommandHandler{
		uowFactory: uowFactory,
		codec:      codec,
		generator:  generator,
	}
}

func (h *PromoteDraftCommandHandler) Handle(ctx context.Context, cmd PromoteDraftCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q, err := h.codec.Decode(cmd.Token())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agencies := uow.AgencyRepository()
	departure, err := agencies.Get(ctx, q.Route().DepartureAgencyID)
	if err != nil {
		return nil, err
	}
	arrival, err := agencies.Get(ctx, q.Route().ArrivalAgencyID)
	if err != nil {
		return nil, err
	}

	trackingNumber, err := h.generator.Generate(departure, arrival)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	aggregate, err := shipment.NewShipment(kernel.NewUUID(), q, cmd.UserID(), cmd.DestinataireID(), trackingNumber, now)
	if err != nil {
		return nil, err
	}
	if err = aggregate.Confirm(now); err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		var exists *errs.ObjectAlreadyExistsError
		if errors.As(err, &exists) && exists.ParamName == ports.ShipmentDraftKey {
			return nil, fmt.Errorf("%w: %w", ErrDuplicatePromotion, err)
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
