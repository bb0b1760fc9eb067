package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Domain events raised by the
// aggregates saved through its repositories are written to the outbox by Commit,
// in the same transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	ShipmentRepository() ShipmentRepository
	AppointmentRepository() AppointmentRepository
	TrackingRepository() TrackingRepository
	TariffRepository() TariffRepository
	AgencyRepository() AgencyRepository
	OutboxRepository() OutboxRepository
}
