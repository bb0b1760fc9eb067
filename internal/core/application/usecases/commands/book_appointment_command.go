package commands

import (
	"errors"
	"time"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/pkg/errs"
	"colis/internal/pkg/guard"
)

var ErrBookAppointmentCommandIsNotConstructed = errors.New(
	"BookAppointmentCommand must be created via NewBookAppointmentCommand constructor",
)

// BookAppointmentCommand asks for a slot on date for a shipment of userID.
// The agency is not part of the request: it is always the shipment's
// departure agency.
type BookAppointmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	userID     kernel.UUID
	date       time.Time

	guard guard.ConstructorGuard
}

func NewBookAppointmentCommand(shipmentID, userID kernel.UUID, date time.Time) (BookAppointmentCommand, error) {
	if err := errors.Join(
		wrapParam("shipmentId", shipmentID.Validate()),
		wrapParam("userId", userID.Validate()),
	); err != nil {
		return BookAppointmentCommand{}, err
	}
	if date.IsZero() {
		return BookAppointmentCommand{}, errs.NewValueIsRequiredError("date")
	}

	return BookAppointmentCommand{
		shipmentID: shipmentID,
		userID:     userID,
		date:       date,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c BookAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrBookAppointmentCommandIsNotConstructed)
}

func (c BookAppointmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c BookAppointmentCommand) UserID() kernel.UUID     { return c.userID }
func (c BookAppointmentCommand) Date() time.Time         { return c.date }
