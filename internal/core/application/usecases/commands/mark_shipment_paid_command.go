package commands

import (
	"errors"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/pkg/guard"
)

var ErrMarkShipmentPaidCommandIsNotConstructed = errors.New(
	"MarkShipmentPaidCommand must be created via NewMarkShipmentPaidCommand constructor",
)

// MarkShipmentPaidCommand carries a payment confirmation for a shipment.
type MarkShipmentPaidCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkShipmentPaidCommand(shipmentID kernel.UUID) (MarkShipmentPaidCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return MarkShipmentPaidCommand{}, err
	}
	return MarkShipmentPaidCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c MarkShipmentPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkShipmentPaidCommandIsNotConstructed)
}

func (c MarkShipmentPaidCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}
