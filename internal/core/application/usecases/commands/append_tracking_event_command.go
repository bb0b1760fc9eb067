package commands

import (
	"errors"

	"colis/internal/core/domain/model/access"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/tracking"
	"colis/internal/pkg/guard"
)

var ErrAppendTrackingEventCommandIsNotConstructed = errors.New(
	"AppendTrackingEventCommand must be created via NewAppendTrackingEventCommand constructor",
)

type AppendTrackingEventCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	status      tracking.Status
	location    string
	description string
	actorRole   access.Role

	guard guard.ConstructorGuard
}

func NewAppendTrackingEventCommand(
	shipmentID kernel.UUID,
	status, location, description string,
	actorRole access.Role,
) (AppendTrackingEventCommand, error) {
	parsed, statusErr := tracking.ParseStatus(status)
	if err := errors.Join(
		wrapParam("shipmentId", shipmentID.Validate()),
		statusErr,
		validateRole(actorRole),
	); err != nil {
		return AppendTrackingEventCommand{}, err
	}

	return AppendTrackingEventCommand{
		shipmentID:  shipmentID,
		status:      parsed,
		location:    location,
		description: description,
		actorRole:   actorRole,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AppendTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrAppendTrackingEventCommandIsNotConstructed)
}

func (c AppendTrackingEventCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c AppendTrackingEventCommand) Status() tracking.Status { return c.status }
func (c AppendTrackingEventCommand) Location() string        { return c.location }
func (c AppendTrackingEventCommand) Description() string     { return c.description }
func (c AppendTrackingEventCommand) ActorRole() access.Role  { return c.actorRole }
