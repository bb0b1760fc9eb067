package commands

import (
	"context"
)

// CancelAppointmentCommandHandler lets the owner cancel an appointment, which
// frees the shipment for a new booking.
type CancelAppointmentCommandHandler struct {
	uowFactory AppointmentUoWFactory
}

func NewCancelAppointmentCommandHandler(uowFactory AppointmentUoWFactory) CancelAppointmentCommandHandler {
	return CancelAppointmentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CancelAppointmentCommandHandler) Handle(ctx context.Context, cmd CancelAppointmentCommand) error {
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

	repo := uow.AppointmentRepository()
	booked, err := repo.Get(ctx, cmd.AppointmentID())
	if err != nil {
		return err
	}

	if err = booked.Cancel(cmd.UserID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, booked); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
