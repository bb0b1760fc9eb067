// Package postgres provides the GORM unit of work and the schema of the
// shipping engine.
//
// A unit of work wraps one database transaction. Repositories obtained from it
// run inside that transaction and register every aggregate they save. On
// Commit the pending domain events of those aggregates are serialized into
// outbox_messages in the same transaction, so an event is stored if and only
// if the state change that raised it is.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.ShipmentRepository().Update(ctx, s); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"colis/internal/adapters/out/postgres/agencyrepo"
	"colis/internal/adapters/out/postgres/appointmentrepo"
	"colis/internal/adapters/out/postgres/outboxrepo"
	"colis/internal/adapters/out/postgres/shipmentrepo"
	"colis/internal/adapters/out/postgres/tariffrepo"
	"colis/internal/adapters/out/postgres/trackingrepo"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/ports"
	"colis/internal/pkg/ddd"

	"gorm.io/gorm"
)

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work. Instances must not be shared between
// goroutines.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes the outbox and commits. Pending events are cleared from the
// aggregates only once the commit succeeded.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	roots, messages, err := uow.collectEvents()
	if err != nil {
		return err
	}
	if err = outboxrepo.NewGormOutboxRepository(uow.tx).Save(ctx, messages); err != nil {
		return fmt.Errorf("write outbox: %w", err)
	}

	err = uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, root := range roots {
		root.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards the transaction and forgets tracked aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AppointmentRepository() ports.AppointmentRepository {
	return appointmentrepo.NewGormAppointmentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TrackingRepository() ports.TrackingRepository {
	return trackingrepo.NewGormTrackingRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TariffRepository() ports.TariffRepository {
	return tariffrepo.NewGormTariffRepository(uow.conn())
}

func (uow *GormUnitOfWork) AgencyRepository() ports.AgencyRepository {
	return agencyrepo.NewGormAgencyRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate is called by repositories for every aggregate they save.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	for _, t := range uow.trackedAggregates {
		if t.Aggregate == aggregate {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) collectEvents() ([]ddd.AggregateRoot, []ports.OutboxMessage, error) {
	var (
		roots    []ddd.AggregateRoot
		messages []ports.OutboxMessage
	)
	for _, t := range uow.trackedAggregates {
		root, ok := t.Aggregate.(ddd.AggregateRoot)
		if !ok {
			continue
		}
		roots = append(roots, root)
		for _, event := range root.DomainEvents() {
			payload, err := json.Marshal(event)
			if err != nil {
				return nil, nil, fmt.Errorf("marshal %s: %w", event.EventName(), err)
			}
			messages = append(messages, ports.OutboxMessage{
				ID:          event.EventID(),
				Name:        event.EventName(),
				AggregateID: event.AggregateID(),
				Payload:     payload,
				OccurredAt:  event.OccurredAt(),
			})
		}
	}
	return roots, messages, nil
}
