package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxMessage is a serialized domain event waiting to be published.
type OutboxMessage struct {
	ID          uuid.UUID
	Name        string
	AggregateID uuid.UUID
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads and acknowledges messages written by the unit of work.
type OutboxRepository interface {
	// GetUnprocessed returns up to limit messages in the order they were raised.
	// Rows are locked so that concurrent relays skip each other's batches.
	GetUnprocessed(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkProcessed(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

// EventPublisher delivers messages to the message bus.
type EventPublisher interface {
	Publish(ctx context.Context, messages []OutboxMessage) error
}
