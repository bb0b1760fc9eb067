// Package commands contains the write operations of the shipping engine.
// Every handler validates its command, opens a unit of work, applies the
// domain transition and commits; a rejected command leaves the store untouched.
package commands

import (
	"context"

	"colis/internal/core/ports"
)

// Each handler depends on the narrowest unit of work it needs.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	AppointmentRepoFactory interface {
		AppointmentRepository() ports.AppointmentRepository
	}

	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	TariffRepoFactory interface {
		TariffRepository() ports.TariffRepository
	}

	AgencyRepoFactory interface {
		AgencyRepository() ports.AgencyRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// QuoteUoW reads the tariff and the agencies of a route.
	QuoteUoW interface {
		TxManager
		TariffRepoFactory
		AgencyRepoFactory
	}

	QuoteUoWFactory interface {
		Create() QuoteUoW
	}

	// PromotionUoW stores a new shipment and reads agency codes for its
	// tracking number.
	PromotionUoW interface {
		TxManager
		ShipmentRepoFactory
		AgencyRepoFactory
	}

	PromotionUoWFactory interface {
		Create() PromotionUoW
	}

	// ShipmentUoW is used by lifecycle transitions that touch one shipment.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	AppointmentUoW interface {
		TxManager
		ShipmentRepoFactory
		AppointmentRepoFactory
	}

	AppointmentUoWFactory interface {
		Create() AppointmentUoW
	}

	TrackingUoW interface {
		TxManager
		ShipmentRepoFactory
		TrackingRepoFactory
	}

	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	TariffUoW interface {
		TxManager
		TariffRepoFactory
	}

	TariffUoWFactory interface {
		Create() TariffUoW
	}

	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
