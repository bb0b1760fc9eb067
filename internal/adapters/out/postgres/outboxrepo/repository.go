// Package outboxrepo stores serialized domain events until they are relayed.
package outboxrepo

import (
	"context"
	"time"

	"colis/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MessageDTO is an outbox_messages row. Seq preserves the order in which
// events were raised.
type MessageDTO struct {
	Seq         int64      `gorm:"primaryKey;autoIncrement"`
	ID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Name        string     `gorm:"size:64;not null"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null"`
	ProcessedAt *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Save appends messages. It is called by the unit of work on commit.
func (r *GormOutboxRepository) Save(ctx context.Context, messages []ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}
	dtos := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, MessageDTO{
			ID:          m.ID,
			Name:        m.Name,
			AggregateID: m.AggregateID,
			Payload:     m.Payload,
			OccurredAt:  m.OccurredAt,
		})
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetUnprocessed locks the oldest pending rows with SKIP LOCKED.
func (r *GormOutboxRepository) GetUnprocessed(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("processed_at IS NULL").
		Order("seq").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, ports.OutboxMessage{
			ID:          dto.ID,
			Name:        dto.Name,
			AggregateID: dto.AggregateID,
			Payload:     dto.Payload,
			OccurredAt:  dto.OccurredAt,
		})
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkProcessed(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id IN ?", ids).
		Update("processed_at", at).Error
}
