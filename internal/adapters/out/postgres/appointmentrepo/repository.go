package appointmentrepo

import (
	"context"
	"errors"

	"colis/internal/adapters/out/postgres/pgerr"
	"colis/internal/core/domain/model/appointment"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormAppointmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormAppointmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAppointmentRepository {
	return &GormAppointmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a scheduled appointment. A second scheduled appointment for the
// same shipment is rejected by the store with ObjectAlreadyExistsError.
func (r *GormAppointmentRepository) Add(ctx context.Context, aggregate *appointment.Appointment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if constraint, ok := pgerr.UniqueViolation(err); ok && constraint == scheduledIndex {
			return errs.NewObjectAlreadyExistsErrorWithCause("appointment for shipment", aggregate.ShipmentID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormAppointmentRepository) Update(ctx context.Context, aggregate *appointment.Appointment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&AppointmentDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"status": int(aggregate.Status()),
			"date":   aggregate.Date(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("appointment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormAppointmentRepository) Get(ctx context.Context, id kernel.UUID) (*appointment.Appointment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AppointmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("appointment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// HasScheduled reports whether the shipment already has a scheduled appointment.
func (r *GormAppointmentRepository) HasScheduled(ctx context.Context, shipmentID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AppointmentDTO{}).
		Where("shipment_id = ? AND status = ?", shipmentID.Bytes(), int(appointment.Scheduled)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
