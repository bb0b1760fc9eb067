package commands

import (
	"errors"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/pkg/guard"
)

var ErrCancelAppointmentCommandIsNotConstructed = errors.New(
	"CancelAppointmentCommand must be created via NewCancelAppointmentCommand constructor",
)

type CancelAppointmentCommand struct { //nolint:recvcheck //using for validation
	appointmentID kernel.UUID
	userID        kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelAppointmentCommand(appointmentID, userID kernel.UUID) (CancelAppointmentCommand, error) {
	if err := errors.Join(
		wrapParam("appointmentId", appointmentID.Validate()),
		wrapParam("userId", userID.Validate()),
	); err != nil {
		return CancelAppointmentCommand{}, err
	}
	return CancelAppointmentCommand{
		appointmentID: appointmentID,
		userID:        userID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CancelAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelAppointmentCommandIsNotConstructed)
}

func (c CancelAppointmentCommand) AppointmentID() kernel.UUID { return c.appointmentID }
func (c CancelAppointmentCommand) UserID() kernel.UUID        { return c.userID }
