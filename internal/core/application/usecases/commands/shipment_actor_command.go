package commands

import (
	"errors"
	"fmt"

	"colis/internal/core/domain/model/access"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/pkg/guard"
)

var (
	ErrCancelShipmentCommandIsNotConstructed = errors.New(
		"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
	)
	ErrCompleteShipmentCommandIsNotConstructed = errors.New(
		"CompleteShipmentCommand must be created via NewCompleteShipmentCommand constructor",
	)
	ErrDeleteShipmentCommandIsNotConstructed = errors.New(
		"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
	)
)

// shipmentActor is the shipment an authenticated actor wants to act on.
type shipmentActor struct {
	shipmentID kernel.UUID
	actorID    kernel.UUID
	actorRole  access.Role

	guard guard.ConstructorGuard
}

func newShipmentActor(shipmentID, actorID kernel.UUID, actorRole access.Role) (shipmentActor, error) {
	a := shipmentActor{
		shipmentID: shipmentID,
		actorID:    actorID,
		actorRole:  actorRole,
		guard:      guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		wrapParam("shipmentId", shipmentID.Validate()),
		wrapParam("actorId", actorID.Validate()),
		validateRole(actorRole),
	); err != nil {
		return shipmentActor{}, err
	}
	return a, nil
}

func (a shipmentActor) ShipmentID() kernel.UUID { return a.shipmentID }
func (a shipmentActor) ActorID() kernel.UUID    { return a.actorID }
func (a shipmentActor) ActorRole() access.Role  { return a.actorRole }

func validateRole(role access.Role) error {
	_, err := access.ParseRole(string(role))
	return err
}

func wrapParam(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}

// CancelShipmentCommand is issued by the shipment's owner or by an operator
// allowed to cancel any shipment.
type CancelShipmentCommand struct{ shipmentActor }

func NewCancelShipmentCommand(shipmentID, actorID kernel.UUID, actorRole access.Role) (CancelShipmentCommand, error) {
	a, err := newShipmentActor(shipmentID, actorID, actorRole)
	return CancelShipmentCommand{a}, err
}

func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// CompleteShipmentCommand closes a delivered shipment.
type CompleteShipmentCommand struct{ shipmentActor }

func NewCompleteShipmentCommand(shipmentID, actorID kernel.UUID, actorRole access.Role) (CompleteShipmentCommand, error) {
	a, err := newShipmentActor(shipmentID, actorID, actorRole)
	return CompleteShipmentCommand{a}, err
}

func (c CompleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteShipmentCommandIsNotConstructed)
}

// DeleteShipmentCommand soft-deletes a cancelled or completed shipment.
type DeleteShipmentCommand struct{ shipmentActor }

func NewDeleteShipmentCommand(shipmentID, actorID kernel.UUID, actorRole access.Role) (DeleteShipmentCommand, error) {
	a, err := newShipmentActor(shipmentID, actorID, actorRole)
	return DeleteShipmentCommand{a}, err
}

func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}
