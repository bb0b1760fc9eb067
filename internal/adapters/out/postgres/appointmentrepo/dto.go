// Package appointmentrepo persists appointments with GORM.
package appointmentrepo

import (
	"time"

	"colis/internal/core/domain/model/appointment"
	"colis/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const scheduledIndex = "idx_appointments_scheduled_shipment"

// AppointmentDTO is the appointments row. The partial unique index allows a
// single scheduled appointment per shipment; status 1 is appointment.Scheduled.
type AppointmentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_appointments_scheduled_shipment,where:status = 1"`
	UserID     uuid.UUID `gorm:"type:uuid;not null"`
	AgencyID   uuid.UUID `gorm:"type:uuid;not null"`
	Date       time.Time `gorm:"not null"`
	Status     int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false"`
}

func (AppointmentDTO) TableName() string {
	return "appointments"
}

func fromDomain(a *appointment.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:         a.ID().Bytes(),
		ShipmentID: a.ShipmentID().Bytes(),
		UserID:     a.UserID().Bytes(),
		AgencyID:   a.AgencyID().Bytes(),
		Date:       a.Date(),
		Status:     int(a.Status()),
		CreatedAt:  a.CreatedAt(),
	}
}

func toDomain(dto AppointmentDTO) (*appointment.Appointment, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.ShipmentID, dto.UserID, dto.AgencyID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return appointment.RestoreAppointment(ids[0], ids[1], ids[2], ids[3], dto.Date, appointment.Status(dto.Status), dto.CreatedAt)
}
