// Package trackingrepo is the append-only GORM store of tracking events.
package trackingrepo

import (
	"time"

	"colis/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// EventDTO is a tracking_events row. Seq is a bigserial assigned at insert
// and is the only ordering key of a shipment's history.
type EventDTO struct {
	Seq           int64     `gorm:"primaryKey;autoIncrement"`
	ID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ShipmentID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status        string    `gorm:"size:16;not null"`
	Location      string    `gorm:"size:255;not null;default:''"`
	Description   string    `gorm:"size:1000;not null;default:''"`
	CreatedByRole string    `gorm:"size:32;not null"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime:false"`
}

func (EventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(e *tracking.Event) EventDTO {
	return EventDTO{
		ID:            e.ID().Bytes(),
		ShipmentID:    e.ShipmentID().Bytes(),
		Status:        e.Status().String(),
		Location:      e.Location(),
		Description:   e.Description(),
		CreatedByRole: string(e.CreatedByRole()),
		CreatedAt:     e.CreatedAt(),
	}
}
