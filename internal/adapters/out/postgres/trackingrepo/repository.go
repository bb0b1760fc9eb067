package trackingrepo

import (
	"context"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

type GormTrackingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTrackingRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingRepository {
	return &GormTrackingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append inserts the event and copies the generated sequence back onto it.
func (r *GormTrackingRepository) Append(ctx context.Context, event *tracking.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	event.AssignSeq(dto.Seq)

	r.tracker.TrackAggregate(event.ID(), event)
	return nil
}
