package commands

import (
	"context"
	"time"

	"colis/internal/core/domain/model/access"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/tracking"
)

// AppendTrackingEventCommandHandler adds an entry to a shipment's tracking
// ledger. Entries are never edited; the latest one is the visible status.
type AppendTrackingEventCommandHandler struct {
	uowFactory TrackingUoWFactory
	policy     access.Policy
}

func NewAppendTrackingEventCommandHandler(
	uowFactory TrackingUoWFactory,
	policy access.Policy,
) AppendTrackingEventCommandHandler {
	return AppendTrackingEventCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h *AppendTrackingEventCommandHandler) Handle(
	ctx context.Context,
	cmd AppendTrackingEventCommand,
) (*tracking.Event, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.ActorRole(), access.ActionAppendTrackingEvent); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}
	if target.IsDeleted() {
		return nil, ErrShipmentDeleted
	}

	event, err := tracking.NewEvent(
		kernel.NewUUID(),
		target.ID(),
		cmd.Status(),
		cmd.Location(),
		cmd.Description(),
		cmd.ActorRole(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.TrackingRepository().Append(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return event, nil
}
