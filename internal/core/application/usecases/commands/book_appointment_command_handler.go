package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"colis/internal/core/domain/model/appointment"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/pkg/errs"
)

// BookAppointmentCommandHandler books the single appointment of a paid
// shipment. A missing shipment, a foreign, unpaid or deleted one, and an
// existing appointment are all reported as ErrAppointmentNotAllowed. The
// store's partial unique index closes the race between two concurrent
// bookings; the loser gets the same error.
type BookAppointmentCommandHandler struct {
	uowFactory AppointmentUoWFactory
}

func NewBookAppointmentCommandHandler(uowFactory AppointmentUoWFactory) BookAppointmentCommandHandler {
	return BookAppointmentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *BookAppointmentCommandHandler) Handle(ctx context.Context, cmd BookAppointmentCommand) (*appointment.Appointment, error) {
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

	target, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrAppointmentNotAllowed, err)
		}
		return nil, err
	}

	appointments := uow.AppointmentRepository()
	scheduled, err := appointments.HasScheduled(ctx, target.ID())
	if err != nil {
		return nil, err
	}
	if scheduled {
		return nil, fmt.Errorf("%w: shipment already has an appointment", ErrAppointmentNotAllowed)
	}

	booked, err := appointment.Book(kernel.NewUUID(), target, cmd.UserID(), cmd.Date(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = appointments.Add(ctx, booked); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return nil, fmt.Errorf("%w: %w", ErrAppointmentNotAllowed, err)
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return booked, nil
}
