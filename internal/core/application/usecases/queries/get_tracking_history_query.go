package queries

import (
	"errors"
	"time"

	"colis/internal/core/domain/model/access"
	"colis/internal/core/domain/model/kernel"
)

var ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
	"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
)

// GetTrackingHistoryQuery lists a shipment's tracking events in the order
// they were appended.
type GetTrackingHistoryQuery struct {
	shipmentViewer
}

func NewGetTrackingHistoryQuery(shipmentID, actorID kernel.UUID, actorRole access.Role) (GetTrackingHistoryQuery, error) {
	v, err := newShipmentViewer(shipmentID, actorID, actorRole)
	return GetTrackingHistoryQuery{v}, err
}

func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}

type TrackingEventResponse struct {
	ID            kernel.UUID
	Seq           int64
	Status        string
	Location      string
	Description   string
	CreatedByRole string
	CreatedAt     time.Time
}
