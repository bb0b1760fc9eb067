// Package ports defines the contracts between the shipping engine and its
// infrastructure: repositories, the unit of work, the draft token codec and
// the event publisher.
package ports

import (
	"context"

	"colis/internal/core/domain/model/agency"
	"colis/internal/core/domain/model/appointment"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/shipment"
	"colis/internal/core/domain/model/tariff"
	"colis/internal/core/domain/model/tracking"
)

// ShipmentRepository persists Shipment aggregates with their parcels.
type ShipmentRepository interface {
	// Add inserts a shipment and its parcels. A second shipment for the same
	// draft fails with an errs.ObjectAlreadyExistsError whose ParamName is
	// ShipmentDraftKey.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update writes the header fields (status, paid, isDeleted, updatedAt).
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get returns a shipment, including soft-deleted ones.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// DeleteParcels removes the parcel rows of a shipment. The header and its
	// tracking history are kept.
	DeleteParcels(ctx context.Context, id kernel.UUID) error
}

// Keys reported in errs.ObjectAlreadyExistsError by ShipmentRepository.Add.
const (
	ShipmentDraftKey          = "draftId"
	ShipmentTrackingNumberKey = "trackingNumber"
)

// AppointmentRepository persists appointments. At most one Scheduled
// appointment may exist per shipment; Add reports a violation with an
// errs.ObjectAlreadyExistsError.
type AppointmentRepository interface {
	Add(ctx context.Context, aggregate *appointment.Appointment) error
	Update(ctx context.Context, aggregate *appointment.Appointment) error
	Get(ctx context.Context, id kernel.UUID) (*appointment.Appointment, error)
	HasScheduled(ctx context.Context, shipmentID kernel.UUID) (bool, error)
}

// TrackingRepository is the append-only store of tracking events.
type TrackingRepository interface {
	// Append stores the event and assigns its sequence number.
	Append(ctx context.Context, event *tracking.Event) error
}

// TariffRepository holds the singleton tariff.
type TariffRepository interface {
	Get(ctx context.Context) (tariff.Tariff, error)
	Save(ctx context.Context, t tariff.Tariff) error
}

// AgencyRepository is a read-only view over agencies.
type AgencyRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*agency.Agency, error)
}
