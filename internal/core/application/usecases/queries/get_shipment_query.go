package queries

import (
	"errors"
	"time"

	"colis/internal/core/domain/model/access"
	"colis/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery reads one shipment with its parcels and its current
// delivery status.
type GetShipmentQuery struct {
	shipmentViewer
}

func NewGetShipmentQuery(shipmentID, actorID kernel.UUID, actorRole access.Role) (GetShipmentQuery, error) {
	v, err := newShipmentViewer(shipmentID, actorID, actorRole)
	return GetShipmentQuery{v}, err
}

func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

type ParcelResponse struct {
	Height decimal.Decimal
	Width  decimal.Decimal
	Length decimal.Decimal
	Weight decimal.Decimal
}

// GetShipmentQueryResponse is the shipment detail. DeliveryStatus is the
// status of the latest tracking event, empty until one is appended.
type GetShipmentQueryResponse struct {
	ID                kernel.UUID
	TrackingNumber    string
	UserID            kernel.UUID
	DestinataireID    kernel.UUID
	DepartureAgencyID kernel.UUID
	ArrivalAgencyID   kernel.UUID
	Status            string
	Paid              bool
	Price             decimal.Decimal
	TotalWeight       decimal.Decimal
	TotalVolume       decimal.Decimal
	Parcels           []ParcelResponse
	DeliveryStatus    string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
