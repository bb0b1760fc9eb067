package commands

import (
	"context"
	"time"

	"colis/internal/core/ports"
	"colis/internal/pkg/metrics"

	"github.com/google/uuid"
)

// PublishOutboxCommandHandler reads a batch of unprocessed outbox messages,
// publishes them and marks them processed. The batch rows stay locked until
// commit, so two relays never publish the same message concurrently. A
// failed publish leaves the batch unprocessed for the next run; consumers
// must tolerate redelivery.
type PublishOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

func NewPublishOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
) PublishOutboxCommandHandler {
	return PublishOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the number of messages published.
func (h *PublishOutboxCommandHandler) Handle(ctx context.Context, cmd PublishOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	messages, err := repo.GetUnprocessed(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	if err = h.publisher.Publish(ctx, messages); err != nil {
		countOutbox(messages, "failed")
		return 0, err
	}

	ids := make([]uuid.UUID, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}

	if err = repo.MarkProcessed(ctx, ids, time.Now().UTC()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	countOutbox(messages, "published")
	return len(messages), nil
}

func countOutbox(messages []ports.OutboxMessage, outcome string) {
	for _, m := range messages {
		metrics.OutboxMessages.WithLabelValues(m.Name, outcome).Inc()
	}
}
