package postgres

import (
	"colis/internal/adapters/out/postgres/agencyrepo"
	"colis/internal/adapters/out/postgres/appointmentrepo"
	"colis/internal/adapters/out/postgres/outboxrepo"
	"colis/internal/adapters/out/postgres/shipmentrepo"
	"colis/internal/adapters/out/postgres/tariffrepo"
	"colis/internal/adapters/out/postgres/trackingrepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by the engine, in truncate-safe order.
var Tables = []string{
	"outbox_messages",
	"tracking_events",
	"appointments",
	"shipment_parcels",
	"shipments",
	"tariffs",
	"agencies",
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&agencyrepo.AgencyDTO{},
		&tariffrepo.TariffDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ParcelDTO{},
		&appointmentrepo.AppointmentDTO{},
		&trackingrepo.EventDTO{},
		&outboxrepo.MessageDTO{},
	)
}
